package bookalope

import (
	"encoding/base64"
	"strings"
)

// DecodeDataURL parses a data URL of the shape data:<mime>;base64,<data>
// and returns the MIME type and the decoded bytes. Intermediary tooling
// (file pickers, host bridges) often hands documents over in this form.
func DecodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, newError("not a data URL")
	}
	mime, encoded, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, newError("data URL is not base64-encoded")
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, wrapError(err, "malformed base64 payload")
	}
	return mime, decoded, nil
}
