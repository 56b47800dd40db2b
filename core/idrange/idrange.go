package idrange

import (
	"fmt"
	"io"
	"strings"

	"proto-manager/core/proto"
)

// BannerWidth is the length of the '=' rules around a banner.
const BannerWidth = 22

// Range is a closed interval of identifiers.
type Range struct {
	From proto.ID
	To   proto.ID
}

// Len returns the number of identifiers in the range.
func (r Range) Len() int {
	return int(r.To) - int(r.From) + 1
}

func (r Range) String() string {
	switch {
	case r.From == r.To:
		return fmt.Sprintf("%d", r.From)
	case int(r.From)+1 == int(r.To):
		return fmt.Sprintf("%d, %d", r.From, r.To)
	default:
		return fmt.Sprintf("%d-%d (%d ids)", r.From, r.To, r.Len())
	}
}

// Free returns the intervals of [1, bound-1] not present in keys.
// keys must be sorted ascending. Zero and keys at or above bound are ignored.
func Free(keys []proto.ID, bound proto.ID) []Range {
	var out []Range
	limit := int(bound)
	firstFree := 1
	for _, k := range keys {
		key := int(k)
		if key >= limit {
			break
		}
		if key < firstFree {
			continue
		}
		if key > firstFree {
			out = append(out, Range{From: proto.ID(firstFree), To: proto.ID(key - 1)})
		}
		firstFree = key + 1
	}
	if firstFree < limit {
		out = append(out, Range{From: proto.ID(firstFree), To: proto.ID(limit - 1)})
	}
	return out
}

// WriteBanner writes text between two rules, followed by an empty line.
func WriteBanner(w io.Writer, text string) error {
	rule := strings.Repeat("=", BannerWidth)
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n\n", rule, text, rule)
	return err
}

// WriteRanges writes one line per range.
func WriteRanges(w io.Writer, ranges []Range) error {
	for _, r := range ranges {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
