// internal/legal/render/signature.go
package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

var ErrInvalidSignature = errors.New("INVALID_SIGNATURE_IMAGE")

// SignatureImage is a PNG or JPEG raster captured from the signing pad.
type SignatureImage struct {
	Data   []byte
	Format string // "png" or "jpeg"
	Width  int
	Height int
}

// MIMEType returns the image media type.
func (s *SignatureImage) MIMEType() string {
	return "image/" + s.Format
}

// DataURL encodes the image for inline embedding.
func (s *SignatureImage) DataURL() string {
	return "data:" + s.MIMEType() + ";base64," + base64.StdEncoding.EncodeToString(s.Data)
}

// NewSignatureImage checks that data decodes as PNG or JPEG.
func NewSignatureImage(data []byte) (*SignatureImage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidSignature)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if format != "png" && format != "jpeg" {
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidSignature, format)
	}
	return &SignatureImage{Data: data, Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// ParseSignature accepts a "data:image/...;base64," URL or bare base64. An
// empty value means no signature and returns nil without error.
func ParseSignature(value string) (*SignatureImage, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if strings.HasPrefix(value, "data:") {
		comma := strings.IndexByte(value, ',')
		if comma < 0 || !strings.HasSuffix(value[:comma], ";base64") {
			return nil, fmt.Errorf("%w: not a base64 data URL", ErrInvalidSignature)
		}
		value = value[comma+1:]
	}
	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return NewSignatureImage(data)
}
