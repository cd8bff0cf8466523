// Package card implements vCard records: assembling a sequence of content
// lines into a Card, extracting multiple Cards from one source into a
// Collection, and the semantic accessors for reading common properties.
package card

import (
	"errors"
	"strings"

	"github.com/zostay/go-vcard/card/property"
)

// Errors returned by card methods and functions.
var (
	// ErrMalformedCard is returned by Parse when the input does not open
	// with a BEGIN:VCARD line.
	ErrMalformedCard = errors.New("vCard must begin with a BEGIN:VCARD line")

	// ErrNoSuchProperty is returned by accessors when the property being
	// read is not present on the card.
	ErrNoSuchProperty = errors.New("no such property on the card")
)

// Card is one complete vCard record: a version string and an ordered
// sequence of properties. Duplicate names are allowed and order is
// preserved, both for semantics (preference falls back to document order)
// and for round-tripping.
//
// A Card is not safe for concurrent mutation; callers sharing one across
// goroutines must serialize access themselves.
type Card struct {
	lbr        property.Break
	version    string
	properties []*property.Property
}

// Break returns the line break used when rendering the card.
func (c *Card) Break() property.Break {
	if c.lbr == "" {
		c.lbr = property.CRLF
	}
	return c.lbr
}

// SetBreak changes the line break used when rendering the card.
func (c *Card) SetBreak(lbr property.Break) {
	c.lbr = lbr
}

// Version returns the vCard version string, e.g. "4.0". A card built empty
// has no version until one is set or parsed.
func (c *Card) Version() string {
	return c.version
}

// SetVersion sets the vCard version string.
func (c *Card) SetVersion(version string) {
	c.version = version
}

// Append adds the given properties to the end of the card. This is the only
// mutation the property sequence supports.
func (c *Card) Append(ps ...*property.Property) {
	c.properties = append(c.properties, ps...)
}

// Len returns the number of properties on the card.
func (c *Card) Len() int {
	return len(c.properties)
}

// Properties returns the ordered property sequence of the card.
func (c *Card) Properties() []*property.Property {
	ps := make([]*property.Property, len(c.properties))
	copy(ps, c.properties)
	return ps
}

// GetAll returns all properties with the given name in insertion order.
// Name matching is case-insensitive. The returned slice has zero, one, or
// many elements; callers use it uniformly rather than branching on shape.
func (c *Card) GetAll(name string) []*property.Property {
	ps := make([]*property.Property, 0, len(c.properties))
	for _, p := range c.properties {
		if strings.EqualFold(p.Name(), name) {
			ps = append(ps, p)
		}
	}
	return ps
}

// Get returns the property the card considers current for the given name:
// the one with preference rank 1 if any, otherwise the first in insertion
// order. It returns nil when the card has no property with that name.
func (c *Card) Get(name string) *property.Property {
	ps := c.GetAll(name)
	if len(ps) == 0 {
		return nil
	}
	for _, p := range ps {
		if p.Pref() == 1 {
			return p
		}
	}
	return ps[0]
}

// String renders the card as vCard text: the BEGIN line, the VERSION line
// when a version is set, each property folded on its own line, and the END
// line, all separated by the card's line break. The card's break is also
// used inside any property long enough to fold, so the output carries one
// line ending throughout.
func (c *Card) String() string {
	cbr := c.Break()
	lbr := cbr.String()

	var out strings.Builder
	out.WriteString("BEGIN:VCARD")
	out.WriteString(lbr)
	if c.version != "" {
		out.WriteString("VERSION:")
		out.WriteString(c.version)
		out.WriteString(lbr)
	}
	for _, p := range c.properties {
		out.WriteString(p.Render(cbr))
		out.WriteString(lbr)
	}
	out.WriteString("END:VCARD")
	out.WriteString(lbr)
	return out.String()
}

// Bytes returns the rendered card as a slice of bytes.
func (c *Card) Bytes() []byte {
	return []byte(c.String())
}
