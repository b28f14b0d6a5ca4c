package netsh

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Decoder turns raw console output into text without ever failing on
// undecodable input.
type Decoder struct {
	codePage string
	enc      encoding.Encoding
}

// NewDecoder returns a decoder for the named console code page, e.g. IBM850
// or cp866. An empty name selects lenient UTF-8, where every byte that is not
// part of a valid sequence is rendered as the literal escape \xNN.
func NewDecoder(codePage string) (Decoder, error) {
	codePage = strings.TrimSpace(codePage)
	if codePage == "" {
		return Decoder{}, nil
	}
	enc, err := ianaindex.IANA.Encoding(codePage)
	if err != nil {
		return Decoder{}, fmt.Errorf("code page %q: %w", codePage, err)
	}
	if enc == nil {
		return Decoder{}, fmt.Errorf("code page %q is not supported", codePage)
	}
	return Decoder{codePage: codePage, enc: enc}, nil
}

// CodePage reports the configured code page, empty for lenient UTF-8.
func (d Decoder) CodePage() string {
	return d.codePage
}

func (d Decoder) Decode(data []byte) string {
	if d.enc == nil {
		return escapeInvalidUTF8(data)
	}
	out, _, err := transform.Bytes(d.enc.NewDecoder(), data)
	if err != nil {
		return escapeInvalidUTF8(data)
	}
	return string(out)
}

func escapeInvalidUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	var b strings.Builder
	b.Grow(len(data) + 8)
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			fmt.Fprintf(&b, `\x%02x`, data[0])
		} else {
			b.Write(data[:size])
		}
		data = data[size:]
	}
	return b.String()
}
