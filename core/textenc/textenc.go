package textenc

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Default is the label used when none is configured.
const Default = "utf-8"

// Decoder turns bytes of a fixed source encoding into UTF-8 text.
type Decoder struct {
	label string
	enc   encoding.Encoding
}

// New returns a Decoder for the given encoding label.
func New(label string) (*Decoder, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = Default
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown source encoding %q: %w", label, err)
	}
	return &Decoder{label: label, enc: enc}, nil
}

// Label returns the configured encoding label.
func (d *Decoder) Label() string {
	return d.label
}

// Decode converts data to text, replacing invalid sequences with U+FFFD.
func (d *Decoder) Decode(data []byte) string {
	if d.enc == unicode.UTF8 {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	out, err := d.enc.NewDecoder().Bytes(data)
	if err != nil {
		// Single-byte and multi-byte decoders from x/text substitute instead of failing;
		// fall back to UTF-8 repair if one ever does not.
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}

// ReadFile reads path and decodes it.
func (d *Decoder) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return d.Decode(data), nil
}
