package property

import (
	"fmt"
	"strings"
)

// Positional fields of the ADR compound value, per RFC 6350.
const (
	adrPOBox = iota
	adrExtended
	adrStreet
	adrCity
	adrRegion
	adrZip
	adrCountry
)

// Positional fields of the N compound value, per RFC 6350.
const (
	nSurname = iota
	nGiven
	nAdditional
	nPrefix
	nSuffix
)

// structuredField returns the ith semicolon-delimited field of the value.
// Missing trailing fields read as empty strings and fields beyond the
// expected arity are ignored by simply never being asked for.
func structuredField(value string, i int) string {
	fs := strings.Split(value, ";")
	if i < len(fs) {
		return fs[i]
	}
	return ""
}

// Address is a view over an ADR property that decomposes its compound value
// into the seven positional delivery address fields. The view shares the
// underlying property: parameter or value changes made through either are
// seen by both.
type Address struct {
	*Property
}

// AsAddress wraps an existing property in an Address view. The property
// must be named ADR or this fails with ErrTypeMismatch.
func AsAddress(p *Property) (*Address, error) {
	if p.Name() != Adr {
		return nil, fmt.Errorf("%q is not %s: %w", p.Name(), Adr, ErrTypeMismatch)
	}
	return &Address{p}, nil
}

// NewAddress builds an ADR property from the seven positional address
// fields. The fields are composed into the canonical semicolon-joined value
// and routed through the standard parser, so a built Address is structurally
// identical to a parsed one.
func NewAddress(poBox, extended, street, city, region, zip, country string) (*Address, error) {
	v := strings.Join([]string{poBox, extended, street, city, region, zip, country}, ";")
	p, err := Parse(Adr + ":" + v)
	if err != nil {
		return nil, err
	}
	return &Address{p}, nil
}

// POBox returns the post office box field of the address.
func (a *Address) POBox() string { return structuredField(a.value, adrPOBox) }

// Extended returns the extended address field, e.g. an apartment number.
func (a *Address) Extended() string { return structuredField(a.value, adrExtended) }

// Street returns the street address field.
func (a *Address) Street() string { return structuredField(a.value, adrStreet) }

// City returns the locality field of the address.
func (a *Address) City() string { return structuredField(a.value, adrCity) }

// Region returns the region field, e.g. a state or province.
func (a *Address) Region() string { return structuredField(a.value, adrRegion) }

// Zip returns the postal code field of the address.
func (a *Address) Zip() string { return structuredField(a.value, adrZip) }

// Country returns the country name field of the address.
func (a *Address) Country() string { return structuredField(a.value, adrCountry) }

// Name is a view over an N property that decomposes its compound value into
// the five positional name components. Like Address, the view shares the
// underlying property.
type Name struct {
	*Property
}

// AsName wraps an existing property in a Name view. The property must be
// named N or this fails with ErrTypeMismatch.
func AsName(p *Property) (*Name, error) {
	if p.Name() != N {
		return nil, fmt.Errorf("%q is not %s: %w", p.Name(), N, ErrTypeMismatch)
	}
	return &Name{p}, nil
}

// NewName builds an N property from the five positional name components,
// composed and routed through the standard parser the same way NewAddress
// is.
func NewName(surname, given, additional, prefix, suffix string) (*Name, error) {
	v := strings.Join([]string{surname, given, additional, prefix, suffix}, ";")
	p, err := Parse(N + ":" + v)
	if err != nil {
		return nil, err
	}
	return &Name{p}, nil
}

// Surname returns the family name component.
func (n *Name) Surname() string { return structuredField(n.value, nSurname) }

// Given returns the given name component.
func (n *Name) Given() string { return structuredField(n.value, nGiven) }

// Additional returns the additional names component, e.g. middle names.
func (n *Name) Additional() string { return structuredField(n.value, nAdditional) }

// Prefix returns the honorific prefix component, e.g. "Dr.".
func (n *Name) Prefix() string { return structuredField(n.value, nPrefix) }

// Suffix returns the honorific suffix component, e.g. "Jr.".
func (n *Name) Suffix() string { return structuredField(n.value, nSuffix) }
