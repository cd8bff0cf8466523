// Package param provides the low-level storage and wire escaping for vCard
// property parameters as defined by RFC 6350. Parameter values are kept in
// their encoded wire form so that a parsed property can be written back out
// byte-for-byte. The Params container preserves insertion order, which RFC
// 6350 does not require, but which is necessary for round-tripping.
package param

import (
	"strings"
)

// Names of the parameters registered for vCard version 4.
const (
	Altid     = "altid"
	Calscale  = "calscale"
	Geo       = "geo"
	Language  = "language"
	Mediatype = "mediatype"
	PID       = "pid"
	Pref      = "pref"
	SortAs    = "sort-as"
	Type      = "type"
	TZ        = "tz"
	Value     = "value"
)

// IsQuoted returns true when the given value is wrapped in double quotes.
// Quoted parameter values may carry commas and semicolons without escaping.
func IsQuoted(v string) bool {
	return len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"'
}

// Encode transforms a raw parameter value into its wire form. Literal line
// breaks become a backslash-n pair and literal tabs become a backslash-t
// pair. Unless the value is quoted, commas and semicolons are also escaped
// since both act as separators on the content line.
func Encode(v string) string {
	e := strings.NewReplacer(
		"\r\n", `\n`,
		"\r", `\n`,
		"\n", `\n`,
		"\t", `\t`,
	).Replace(v)

	if IsQuoted(e) {
		return e
	}

	return strings.NewReplacer(
		",", `\,`,
		";", `\;`,
	).Replace(e)
}

// Decode reverses Encode, turning a wire form parameter value back into its
// raw form. Separator unescaping only applies to unquoted values, matching
// the choice made during encoding.
func Decode(v string) string {
	d := v
	if !IsQuoted(d) {
		d = strings.NewReplacer(
			`\,`, ",",
			`\;`, ";",
		).Replace(d)
	}

	return strings.NewReplacer(
		`\t`, "\t",
		`\n`, "\n",
	).Replace(d)
}

// Split breaks an encoded parameter value on the commas that separate the
// individual values of a multi-value parameter. Escaped commas and commas
// inside a quoted value are content, not separators. A value with no
// separator comes back as a single element.
func Split(v string) []string {
	vs := make([]string, 0, strings.Count(v, ",")+1)
	var (
		cur     strings.Builder
		escaped bool
		quoted  bool
	)
	for _, c := range v {
		switch {
		case escaped:
			cur.WriteByte('\\')
			cur.WriteRune(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			quoted = !quoted
			cur.WriteRune(c)
		case c == ',' && !quoted:
			vs = append(vs, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(c)
		}
	}
	if escaped {
		cur.WriteByte('\\')
	}
	vs = append(vs, cur.String())
	return vs
}

// Params holds the parameters of a single vCard property. The zero value is
// ready to use. Values are stored encoded and each repeated addition of the
// same parameter is comma-joined onto the existing value, which is how a
// multi-value parameter such as TYPE accumulates.
type Params struct {
	names  []string
	values map[string]string
}

// initParams initializes internal storage lazily.
func (ps *Params) initParams() {
	if ps.values == nil {
		ps.values = make(map[string]string, 5)
	}
}

// Add appends an encoded value for the named parameter. Parameter names are
// case-insensitive and stored lower-cased. If the parameter is already
// present, the new value is comma-joined onto the stored value rather than
// replacing it.
func (ps *Params) Add(name, value string) {
	ps.initParams()
	n := strings.ToLower(name)
	if old, ok := ps.values[n]; ok {
		ps.values[n] = old + "," + value
		return
	}
	ps.names = append(ps.names, n)
	ps.values[n] = value
}

// Get returns the stored encoded value for the named parameter. The second
// return value reports whether the parameter is present at all, so an empty
// value can be told apart from an absent one.
func (ps *Params) Get(name string) (string, bool) {
	v, ok := ps.values[strings.ToLower(name)]
	return v, ok
}

// Names returns the parameter names in insertion order.
func (ps *Params) Names() []string {
	ns := make([]string, len(ps.names))
	copy(ns, ps.names)
	return ns
}

// Len returns the number of distinct parameters stored.
func (ps *Params) Len() int {
	return len(ps.names)
}

// Clone returns a deep copy of the parameter storage.
func (ps *Params) Clone() *Params {
	vs := make(map[string]string, len(ps.values))
	for k, v := range ps.values {
		vs[k] = v
	}
	ns := make([]string, len(ps.names))
	copy(ns, ps.names)
	return &Params{names: ns, values: vs}
}
