// internal/common/aws/email.go
package aws

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"strings"
)

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Email is a message with optional HTML body and attachments.
type Email struct {
	From        string
	To          []string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Raw renders the message as multipart/mixed MIME. Bodies and attachments
// are base64 encoded, headers use RFC 2047 for non-ASCII text.
func (e Email) Raw() ([]byte, error) {
	if e.From == "" || len(e.To) == 0 {
		return nil, errors.New("email needs a sender and at least one recipient")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", e.From)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(e.To, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", e.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mw.Boundary())

	if err := writePart(mw, "text/plain; charset=utf-8", "", []byte(e.Text)); err != nil {
		return nil, err
	}
	if e.HTML != "" {
		if err := writePart(mw, "text/html; charset=utf-8", "", []byte(e.HTML)); err != nil {
			return nil, err
		}
	}
	for _, a := range e.Attachments {
		if err := writePart(mw, a.ContentType, a.Filename, a.Data); err != nil {
			return nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePart(mw *multipart.Writer, contentType, filename string, data []byte) error {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Transfer-Encoding", "base64")
	if filename != "" {
		header.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	}

	part, err := mw.CreatePart(header)
	if err != nil {
		return err
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 76 {
		if _, err := part.Write([]byte(encoded[:76] + "\r\n")); err != nil {
			return err
		}
		encoded = encoded[76:]
	}
	_, err = part.Write([]byte(encoded + "\r\n"))
	return err
}
