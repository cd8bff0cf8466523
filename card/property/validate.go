package property

import (
	"strings"

	"github.com/zostay/go-vcard/card/property/param"
)

// SetParameter validates the given parameter against the vCard 4
// construction rules and, when it passes, stores it encoded. The return
// value reports whether the parameter was accepted; rejected parameters are
// not an error condition, so callers can probe validity cheaply.
//
// Setting a parameter that is already present appends the new value onto the
// existing one with a comma, which is how a multi-value TYPE accumulates.
//
// Validation applies only here, at mutation time. Parameters that arrived by
// parsing a document are never re-validated: real documents carry legacy
// parameters a strict vCard 4 validator would reject, and those must
// round-trip untouched.
func (p *Property) SetParameter(name, value string) bool {
	n := strings.ToLower(name)
	if !p.checkParameter(n, value) {
		return false
	}
	p.params.Add(n, param.Encode(value))
	return true
}

// checkParameter applies the per-parameter vCard 4 rules. The name is
// expected lower-cased.
func (p *Property) checkParameter(name, value string) bool {
	lv := strings.ToLower(value)

	switch name {
	case param.Type:
		if _, ok := typeProperties[p.name]; !ok {
			return false
		}
		if _, ok := telTypeValues[lv]; ok {
			return p.name == Tel
		}
		if _, ok := relatedTypeValues[lv]; ok {
			return p.name == Related
		}
		if lv == "pref" {
			// vCard 4 moved preference to the dedicated pref parameter
			return false
		}
		return lv == "work" || lv == "home" || IsExperimental(value)

	case param.Value:
		if _, ok := valueTypes[lv]; ok {
			return true
		}
		return IsExperimental(value)

	case param.Pref:
		return prefPattern.MatchString(value)

	case param.PID:
		return pidPattern.MatchString(value)

	case param.Calscale:
		if p.name != Bday && p.name != Anniversary {
			return false
		}
		return lv == "gregorian" || IsExperimental(value)

	case param.SortAs:
		return sortAsPattern.MatchString(value)

	case param.Geo:
		return geoPattern.MatchString(value)

	case param.Mediatype:
		return mediatypePattern.MatchString(value)

	case param.Language, param.Altid, param.TZ:
		return true

	default:
		return IsExperimental(name)
	}
}
