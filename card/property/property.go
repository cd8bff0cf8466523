// Package property implements the content-line level of RFC 6350: parsing a
// single unfolded line into a vCard property, validating vCard 4
// construction rules, folding and unfolding physical lines, and serializing
// properties back out so that a parsed property reproduces its original
// bytes (modulo name casing, which is canonicalized).
package property

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zostay/go-vcard/card/property/param"
)

// Errors returned when constructing properties and structured views.
var (
	// ErrUnparsableContentLine is returned by Parse when the given text does
	// not match the content line grammar at all.
	ErrUnparsableContentLine = errors.New("text cannot be parsed as a vCard content line")

	// ErrUnrecognizedPropertyName is returned by New when the given name is
	// neither in the vCard 4 registry nor shaped as an experimental name.
	ErrUnrecognizedPropertyName = errors.New("property name is not a registered vCard 4 name")

	// ErrInvalidPropertyValue is returned by New when the given value is not
	// allowed for the named property, e.g. a KIND outside its enumeration.
	ErrInvalidPropertyValue = errors.New("value is not allowed for this property")

	// ErrTypeMismatch is returned by AsAddress and AsName when the property
	// does not have the name the structured view requires.
	ErrTypeMismatch = errors.New("property does not have the name required by this view")
)

// CharsetDecoder may be replaced to decode property values carrying a legacy
// CHARSET parameter, as vCard 2.1 and 3.0 allowed. Importing the
// go-vcard/encoding package installs a decoder that handles pretty much any
// character set found in the wild. When nil, values are assumed UTF-8, which
// is all vCard 4 permits.
var CharsetDecoder func(charset string, b []byte) (string, error)

// Property is a single named, parameterized value inside a vCard. The name
// and group are fixed at construction; only the value and parameters may be
// changed afterward. The value is kept raw, exactly as it appeared between
// the colon and the end of the content line.
type Property struct {
	group      string
	name       string
	value      string
	params     param.Params
	recognized bool
	raw        string
}

// New constructs a property with the given name and value and no
// parameters. The name must be in the vCard 4 registry (compared
// case-insensitively) or have the experimental x- shape, or this fails with
// ErrUnrecognizedPropertyName. A KIND property must have one of the values
// individual, group, org, or location, or this fails with
// ErrInvalidPropertyValue.
func New(name, value string) (*Property, error) {
	n := strings.ToUpper(name)
	if !Recognized(n) && !IsExperimental(n) {
		return nil, fmt.Errorf("%q: %w", name, ErrUnrecognizedPropertyName)
	}

	if n == Kind {
		if _, ok := kindValues[strings.ToLower(value)]; !ok {
			return nil, fmt.Errorf("KIND %q: %w", value, ErrInvalidPropertyValue)
		}
	}

	return &Property{name: n, value: value, recognized: true}, nil
}

// Group returns the group token of the property or an empty string when the
// property has no group.
func (p *Property) Group() string {
	return p.group
}

// Name returns the canonical upper-cased name of the property. Properties
// that degraded to an unsupported marker during lenient parsing have no
// name; check Unsupported before relying on it.
func (p *Property) Name() string {
	return p.name
}

// Value returns the raw value of the property. No semantic decoding is
// applied; an ADR value, for example, still contains its semicolons.
func (p *Property) Value() string {
	return p.value
}

// SetValue replaces the value of the property.
func (p *Property) SetValue(value string) {
	p.value = value
}

// Unsupported reports whether this property failed vCard 4 recognition: its
// name is outside the registry and not experimental-shaped, or the line it
// came from did not match the content line grammar. Unsupported properties
// are preserved rather than rejected, so unrecognized content survives a
// parse/serialize round trip.
func (p *Property) Unsupported() bool {
	return !p.recognized
}

// Raw returns the original content line text for a property constructed by
// lenient parsing, or an empty string for built properties.
func (p *Property) Raw() string {
	return p.raw
}

// Params returns the parameter storage of the property. Values obtained this
// way are in their encoded wire form; use GetParameter for decoded values.
func (p *Property) Params() *param.Params {
	return &p.params
}

// GetParameter returns the decoded value of the named parameter. The second
// return value reports whether the parameter is present, so an empty value
// is distinct from an absent one. A multi-value parameter comes back as a
// single comma-joined string.
func (p *Property) GetParameter(name string) (string, bool) {
	v, ok := p.params.Get(name)
	if !ok {
		return "", false
	}
	return param.Decode(v), true
}

// Pref returns the preference rank of this property. A numeric pref
// parameter wins. Failing that, a type parameter containing the token pref,
// which is how vCard 3 marked preference, counts as rank 1. A property with
// neither has rank 0.
func (p *Property) Pref() int {
	if v, ok := p.params.Get(param.Pref); ok {
		if n, err := strconv.Atoi(param.Decode(v)); err == nil {
			return n
		}
	}

	if v, ok := p.params.Get(param.Type); ok {
		for _, t := range param.Split(v) {
			if strings.EqualFold(param.Decode(t), "pref") {
				return 1
			}
		}
	}

	return 0
}

// Text returns the value of the property decoded for reading. When the
// property carries a legacy charset parameter and a CharsetDecoder is
// installed, the value is transcoded; otherwise this is the same as Value.
func (p *Property) Text() string {
	cs, ok := p.GetParameter("charset")
	if !ok || CharsetDecoder == nil {
		return p.value
	}

	s, err := CharsetDecoder(cs, []byte(p.value))
	if err != nil {
		return p.value
	}
	return s
}

// String renders the property as a folded content line using the CRLF
// break RFC 6350 specifies. Use Render to fold with a different break.
func (p *Property) String() string {
	return p.Render(CRLF)
}

// Render renders the property as a content line folded with the given line
// break: group.NAME;param=value:value. Parameters render in insertion
// order. A parameter that accumulated several values is re-expanded into
// repeated param=value segments, one per value, so multi-value parameters
// round-trip the way they usually arrive on the wire.
func (p *Property) Render(lbr Break) string {
	if p.name == "" && p.raw != "" {
		// a degraded marker has nothing but its original text
		return p.raw
	}

	var out strings.Builder
	if p.group != "" {
		out.WriteString(p.group)
		out.WriteByte('.')
	}
	out.WriteString(p.name)
	for _, n := range p.params.Names() {
		v, _ := p.params.Get(n)
		for _, single := range param.Split(v) {
			out.WriteByte(';')
			out.WriteString(n)
			out.WriteByte('=')
			out.WriteString(single)
		}
	}
	out.WriteByte(':')
	out.WriteString(p.value)

	return DefaultFoldEncoding.Fold(out.String(), lbr)
}

// Bytes returns the rendered property as a slice of bytes.
func (p *Property) Bytes() []byte {
	return []byte(p.String())
}

// Clone returns a deep copy of the property.
func (p *Property) Clone() *Property {
	return &Property{
		group:      p.group,
		name:       p.name,
		value:      p.value,
		params:     *p.params.Clone(),
		recognized: p.recognized,
		raw:        p.raw,
	}
}
