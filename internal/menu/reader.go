package menu

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/Iron-Ham/clubhouse/internal/errors"
)

// tokenReader yields whitespace-delimited tokens from the input stream. A
// token may be any length.
type tokenReader struct {
	r *bufio.Reader
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(r)}
}

// next returns the next token. End of input yields errors.ErrInputClosed;
// any other failure is wrapped in an InputError naming the field being read.
// A final token cut off by end of input is still returned.
func (t *tokenReader) next(field string) (string, error) {
	var sb strings.Builder
	for {
		r, _, err := t.r.ReadRune()
		if err != nil {
			if err == io.EOF {
				if sb.Len() > 0 {
					return sb.String(), nil
				}
				return "", errors.ErrInputClosed
			}
			return "", errors.NewInputError(field, err)
		}
		if unicode.IsSpace(r) {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			continue
		}
		sb.WriteRune(r)
	}
}
