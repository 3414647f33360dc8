// Package output renders report values as single-line JSON.
//
// The byte layout matches what the report consumers have always parsed:
// ", " and ": " separators, non-ASCII characters escaped as \uXXXX, and no
// HTML escaping.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf16"
	"unicode/utf8"

	"codeberg.org/mutker/hwreport/internal/errors"
)

// InvalidMethod is printed verbatim when no query flag is recognized.
const InvalidMethod = "Invalid method"

// ErrorResult is the normalized payload for expected "no data" conditions.
type ErrorResult struct {
	Message string `json:"error"`
}

// NewErrorResult builds an ErrorResult from err's message.
func NewErrorResult(err error) ErrorResult {
	return ErrorResult{Message: err.Error()}
}

// Marshal encodes v as one compact line without a trailing newline.
func Marshal(v any) ([]byte, error) {
	raw, err := marshalNoEscape(v)
	if err != nil {
		return nil, errors.New().Wrap(errors.ErrEncodeOutput, err)
	}

	return reformat(raw), nil
}

// Write encodes v and writes it to w followed by a newline.
func Write(w io.Writer, v any) error {
	out, err := Marshal(v)
	if err != nil {
		return err
	}

	out = append(out, '\n')
	_, err = w.Write(out)

	return err
}

// WriteText writes a plain-text line, used for the invalid invocation sentinel.
func WriteText(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// escapeRewrites maps escapes produced by encoding/json to their canonical form.
var escapeRewrites = map[string]string{
	`\u003c`: "<",
	`\u003e`: ">",
	`\u0026`: "&",
	`\u0008`: `\b`,
	`\u000c`: `\f`,
}

// reformat rewrites compact encoding/json output into the canonical layout.
func reformat(src []byte) []byte {
	dst := make([]byte, 0, len(src)+len(src)/8)
	inString := false

	for i := 0; i < len(src); i++ {
		c := src[i]

		if !inString {
			dst = append(dst, c)
			switch c {
			case '"':
				inString = true
			case ',', ':':
				dst = append(dst, ' ')
			}
			continue
		}

		switch {
		case c == '\\':
			if i+6 <= len(src) {
				if rep, ok := escapeRewrites[string(src[i:i+6])]; ok {
					dst = append(dst, rep...)
					i += 5
					continue
				}
			}
			// Copy the escape prefix; any \u hex digits follow as plain ASCII.
			dst = append(dst, c)
			if i+1 < len(src) {
				i++
				dst = append(dst, src[i])
			}
		case c == '"':
			inString = false
			dst = append(dst, c)
		case c < utf8.RuneSelf:
			dst = append(dst, c)
		default:
			r, size := utf8.DecodeRune(src[i:])
			dst = appendUnicodeEscape(dst, r)
			i += size - 1
		}
	}

	return dst
}

func appendUnicodeEscape(dst []byte, r rune) []byte {
	if r > 0xFFFF {
		r1, r2 := utf16.EncodeRune(r)
		dst = fmt.Appendf(dst, `\u%04x\u%04x`, r1, r2)
		return dst
	}

	return fmt.Appendf(dst, `\u%04x`, r)
}
