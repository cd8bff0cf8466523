package property

import (
	"fmt"
	"regexp"
	"strings"
)

// contentLine is the grammar for a single unfolded content line:
// an optional group token and dot, a name, zero or more ;key=value
// parameter segments, a mandatory colon, and the rest as raw value. A
// parameter value is a quoted string or a run of characters excluding
// the separators, with backslash escapes allowed so encoded parameter
// values (which escape semicolons and commas) parse back. Matching is
// case-insensitive throughout.
var contentLine = regexp.MustCompile(
	`^(?i)` +
		`(?:([a-z0-9-]+)\.)?` + // group
		`([a-z0-9-]+)` + // name
		`((?:;[a-z0-9-]+=(?:"[^"]*"|(?:\\.|[^\\";:])*))*)` + // parameters
		`:(.*)$`, // value, which may itself contain colons
)

// paramSegment picks the individual ;key=value segments out of the
// parameter portion matched by contentLine.
var paramSegment = regexp.MustCompile(
	`(?i);([a-z0-9-]+)=("[^"]*"|(?:\\.|[^\\";:])*)`)

// Parse parses a single unfolded content line as a vCard property. The
// property name is canonicalized to upper case and parameter names to lower
// case; everything else is preserved byte-for-byte. A name outside the
// vCard 4 registry still parses, flagged unsupported, so unknown content is
// carried forward rather than lost.
//
// Text that does not match the content line grammar at all fails with
// ErrUnparsableContentLine. When parsing lines inside a whole card, use
// ParseLenient instead, which never fails.
func Parse(line string) (*Property, error) {
	p, ok := parse(line)
	if !ok {
		return nil, fmt.Errorf("%q: %w", line, ErrUnparsableContentLine)
	}
	return p, nil
}

// ParseLenient parses a single unfolded content line, degrading instead of
// failing: input that does not match the content line grammar comes back as
// an unsupported marker property that has no name but preserves the
// original text in Raw. This keeps whole-card parsing resilient to garbage
// lines.
func ParseLenient(line string) *Property {
	if p, ok := parse(line); ok {
		return p
	}
	return &Property{raw: line}
}

// parse does the real work for Parse and ParseLenient.
func parse(line string) (*Property, bool) {
	m := contentLine.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	group, name, params, value := m[1], m[2], m[3], m[4]

	p := &Property{
		group: group,
		name:  strings.ToUpper(name),
		value: value,
		raw:   line,
	}
	p.recognized = Recognized(p.name) || IsExperimental(p.name)

	for _, seg := range paramSegment.FindAllStringSubmatch(params, -1) {
		// values stay encoded; repeats comma-join onto the earlier value
		p.params.Add(strings.ToLower(seg[1]), seg[2])
	}

	return p, true
}
