package card

import (
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// cardSpan matches one BEGIN:VCARD … END:VCARD span, minimally, across line
// breaks. Minimal matching keeps concatenated cards from being swallowed
// into one span.
var cardSpan = regexp.MustCompile(`(?is)BEGIN:VCARD.*?END:VCARD`)

// Collection is an ordered set of cards extracted from a single source.
type Collection struct {
	cards []*Card
}

// ParseAll scans the source text for non-overlapping BEGIN:VCARD …
// END:VCARD spans and assembles one card per span, in source order. Spans
// that fail to assemble are skipped; their errors are aggregated and
// returned alongside the cards that did parse, so one bad card does not
// lose the rest of the source.
func ParseAll(text string) (*Collection, error) {
	spans := cardSpan.FindAllString(text, -1)

	col := &Collection{cards: make([]*Card, 0, len(spans))}
	var errs *multierror.Error
	for _, span := range spans {
		c, err := Parse(span)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		col.Append(c)
	}

	return col, errs.ErrorOrNil()
}

// Append adds the given cards to the end of the collection. This is the
// only mutation the collection supports.
func (col *Collection) Append(cs ...*Card) {
	col.cards = append(col.cards, cs...)
}

// Len returns the number of cards in the collection.
func (col *Collection) Len() int {
	return len(col.cards)
}

// Cards returns the cards in the collection in order.
func (col *Collection) Cards() []*Card {
	cs := make([]*Card, len(col.cards))
	copy(cs, col.cards)
	return cs
}

// String renders the collection by concatenating each card's serialized
// form with no added separator.
func (col *Collection) String() string {
	var out strings.Builder
	for _, c := range col.cards {
		out.WriteString(c.String())
	}
	return out.String()
}

// Bytes returns the rendered collection as a slice of bytes.
func (col *Collection) Bytes() []byte {
	return []byte(col.String())
}
