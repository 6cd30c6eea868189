package discover

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/codepdf/pkg/errors"
	"github.com/arthur-debert/codepdf/pkg/types"
)

// ReadContent reads a candidate file as UTF-8, falling back to a
// Latin-1 interpretation when the bytes are not valid UTF-8. Source
// trees occasionally carry legacy-encoded files and the listing should
// degrade rather than refuse them.
func ReadContent(fs types.FS, path string) (string, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	return decodeLatin1(data), nil
}

// decodeLatin1 maps each byte to the Unicode code point of the same
// value, which is exactly the Latin-1 decoding.
func decodeLatin1(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(rune(c))
	}
	return b.String()
}
