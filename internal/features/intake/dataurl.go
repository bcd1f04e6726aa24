package intake

import (
	"encoding/base64"
	"fmt"
	"strings"

	apperrors "github.com/xyz-asif/findme/pkg/errors"
)

// EncodeDataURL renders data as data:<mime>;base64,<payload>.
func EncodeDataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL is the inverse of EncodeDataURL.
func DecodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: not a data URL", apperrors.ErrBadRequest)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: data URL has no payload", apperrors.ErrBadRequest)
	}
	contentType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("%w: data URL is not base64", apperrors.ErrBadRequest)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err)
	}
	return contentType, data, nil
}
