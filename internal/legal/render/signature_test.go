package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 16))
	for x := 0; x < 40; x++ {
		img.Set(x, 8, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestParseSignature(t *testing.T) {
	raw := testPNG(t)
	encoded := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		value   string
		wantNil bool
		wantErr bool
	}{
		{"empty means no signature", "", true, false},
		{"data url", "data:image/png;base64," + encoded, false, false},
		{"bare base64", encoded, false, false},
		{"not base64 data url", "data:image/png," + encoded, true, true},
		{"garbage", "%%%", true, true},
		{"not an image", base64.StdEncoding.EncodeToString([]byte("hello")), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := ParseSignature(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSignature)
			} else {
				require.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, sig)
				return
			}
			require.NotNil(t, sig)
			assert.Equal(t, "png", sig.Format)
			assert.Equal(t, 40, sig.Width)
			assert.Equal(t, 16, sig.Height)
			assert.Equal(t, raw, sig.Data)
		})
	}
}

func TestSignatureImage_DataURL(t *testing.T) {
	sig, err := NewSignatureImage(testPNG(t))
	require.NoError(t, err)

	again, err := ParseSignature(sig.DataURL())
	require.NoError(t, err)
	assert.Equal(t, sig.Data, again.Data)
	assert.Equal(t, "image/png", sig.MIMEType())
}
