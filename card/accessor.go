package card

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-vcard/card/property"
)

// Timestamp formats from RFC 6350 §4.3. The basic forms come first because
// they are what vCard 4 producers actually write.
var timeFormats = []string{
	"20060102T150405Z",
	"20060102T150405-0700",
	"20060102T150405",
	time.RFC3339,
	"20060102",
	"2006-01-02",
}

// ParseTime parses a vCard date or timestamp value. The RFC 6350 basic
// formats are attempted first, then a lenient fallback parse for values
// written by less careful producers.
//
// It either returns a parsed time or the parse error.
func ParseTime(value string) (time.Time, error) {
	for _, f := range timeFormats {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}

	t, err := dateparse.ParseAny(value)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", value)
}

// getTime reads the named property as a time value.
func (c *Card) getTime(name string) (time.Time, error) {
	p := c.Get(name)
	if p == nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, ErrNoSuchProperty)
	}
	return ParseTime(p.Value())
}

// FN returns the preferred formatted name of the card, or an empty string
// when the card has no FN property.
func (c *Card) FN() string {
	if p := c.Get(property.FN); p != nil {
		return p.Text()
	}
	return ""
}

// Kind returns the KIND of the card. A card without a KIND property is an
// "individual", per RFC 6350.
func (c *Card) Kind() string {
	if p := c.Get(property.Kind); p != nil {
		return p.Text()
	}
	return "individual"
}

// Email returns the preferred EMAIL value of the card, or an empty string
// when the card has no EMAIL property.
func (c *Card) Email() string {
	if p := c.Get(property.Email); p != nil {
		return p.Text()
	}
	return ""
}

// Emails returns every EMAIL value on the card in insertion order.
func (c *Card) Emails() []string {
	ps := c.GetAll(property.Email)
	vs := make([]string, len(ps))
	for i, p := range ps {
		vs[i] = p.Text()
	}
	return vs
}

// EmailAddress parses the preferred EMAIL value as an email address. It
// returns ErrNoSuchProperty when the card has no EMAIL property and a parse
// error when the value does not parse strictly as an address.
func (c *Card) EmailAddress() (addr.Address, error) {
	p := c.Get(property.Email)
	if p == nil {
		return nil, fmt.Errorf("%s: %w", property.Email, ErrNoSuchProperty)
	}

	a, err := addr.ParseEmailAddress(p.Text())
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Rev returns the revision timestamp of the card from the REV property.
//
// It returns the zero value and ErrNoSuchProperty when the card has no REV
// property, or a parse error when the value cannot be read as a timestamp.
func (c *Card) Rev() (time.Time, error) {
	return c.getTime(property.Rev)
}

// Bday returns the birth date of the card holder from the BDAY property.
//
// It returns the zero value and ErrNoSuchProperty when the card has no BDAY
// property, or a parse error when the value cannot be read as a date.
func (c *Card) Bday() (time.Time, error) {
	return c.getTime(property.Bday)
}

// Addresses returns an Address view for every ADR property on the card, in
// insertion order.
func (c *Card) Addresses() []*property.Address {
	ps := c.GetAll(property.Adr)
	as := make([]*property.Address, 0, len(ps))
	for _, p := range ps {
		a, err := property.AsAddress(p)
		if err != nil {
			continue
		}
		as = append(as, a)
	}
	return as
}

// Names returns a Name view for every N property on the card, in insertion
// order.
func (c *Card) Names() []*property.Name {
	ps := c.GetAll(property.N)
	ns := make([]*property.Name, 0, len(ps))
	for _, p := range ps {
		n, err := property.AsName(p)
		if err != nil {
			continue
		}
		ns = append(ns, n)
	}
	return ns
}
