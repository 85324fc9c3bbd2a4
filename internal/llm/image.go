package llm

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid data URI")

// ParseDataURI decodes a base64 data URI such as the ones browsers produce
// with FileReader.readAsDataURL.
func ParseDataURI(uri string) (*Image, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return nil, fmt.Errorf("%w: missing data: prefix", ErrInvalidDataURI)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing payload", ErrInvalidDataURI)
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURI)
	}
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("%w: %q is not an image type", ErrInvalidDataURI, mime)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidDataURI)
	}
	return &Image{MIMEType: mime, Data: data}, nil
}
