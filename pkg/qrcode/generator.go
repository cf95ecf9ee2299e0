package qrcode

import (
	"encoding/base64"
	"errors"
	"os"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent   = errors.New("qrcode: content cannot be empty")
	ErrGenerateFailed = errors.New("qrcode: failed to generate image")
	ErrWriteFailed    = errors.New("qrcode: failed to write image")
)

// DefaultSize is the image edge in pixels used when size is not positive.
const DefaultSize = 256

// Generate encodes content as a PNG image of size by size pixels.
// Enrollment URIs carry a secret, so the medium recovery level keeps the
// symbol small enough for phone cameras at the default size.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}

	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrGenerateFailed, err)
	}
	return png, nil
}

// DataURI returns the PNG for content as a base64 data URI.
func DataURI(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// WriteFile writes the PNG for content to path with owner-only permissions.
func WriteFile(path, content string, size int) error {
	png, err := Generate(content, size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o600); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}
