package delim

import (
	"strings"
	"unicode/utf8"

	"github.com/erraggy/csvtools/csverrors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultComma is the field delimiter used when none is configured.
const DefaultComma = ','

// Dialect describes how delimited text is laid out.
type Dialect struct {
	// Comma is the field delimiter.
	Comma rune
	// Encoding is the character set of the input, as an IANA or WHATWG name
	// (e.g. "latin1", "windows-1251", "utf-16le"). Empty means UTF-8 input
	// passed through unchanged.
	Encoding string
}

// DefaultDialect returns a comma-separated, UTF-8 dialect.
func DefaultDialect() Dialect {
	return Dialect{Comma: DefaultComma}
}

// Validate checks that the delimiter can be used and the encoding is known.
func (d Dialect) Validate() error {
	if !validComma(d.Comma) {
		return &csverrors.ConfigError{
			Option:  "delimiter",
			Value:   string(d.Comma),
			Message: "must be a single character other than a quote or line break",
		}
	}
	if _, err := d.decoding(); err != nil {
		return err
	}
	return nil
}

// decoding resolves Encoding. A nil result means no transcoding is needed.
func (d Dialect) decoding() (encoding.Encoding, error) {
	name := strings.TrimSpace(d.Encoding)
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, &csverrors.ConfigError{
			Option: "encoding",
			Value:  d.Encoding,
			Cause:  err,
		}
	}
	return enc, nil
}

func validComma(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// ParseDelimiter converts a user-supplied delimiter into a rune.
// Besides a single literal character it accepts the names "tab", "comma",
// "semicolon", "pipe" and "space", and the escape `\t`.
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "tab", `\t`:
		return '\t', nil
	case "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	case "space":
		return ' ', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, &csverrors.ConfigError{
			Option:  "delimiter",
			Value:   s,
			Message: "must be a single character",
		}
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !validComma(r) {
		return 0, &csverrors.ConfigError{
			Option:  "delimiter",
			Value:   s,
			Message: "must not be a quote or line break",
		}
	}
	return r, nil
}
