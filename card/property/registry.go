package property

import (
	"regexp"
	"strings"
)

// These are the property names registered for vCard version 4 in RFC 6350.
const (
	Adr          = "ADR"
	Anniversary  = "ANNIVERSARY"
	Bday         = "BDAY"
	Begin        = "BEGIN"
	CalAdrURI    = "CALADRURI"
	CalURI       = "CALURI"
	Categories   = "CATEGORIES"
	ClientPIDMap = "CLIENTPIDMAP"
	Email        = "EMAIL"
	End          = "END"
	FBURL        = "FBURL"
	FN           = "FN"
	Gender       = "GENDER"
	Geo          = "GEO"
	IMPP         = "IMPP"
	Key          = "KEY"
	Kind         = "KIND"
	Lang         = "LANG"
	Logo         = "LOGO"
	Member       = "MEMBER"
	N            = "N"
	Nickname     = "NICKNAME"
	Note         = "NOTE"
	Org          = "ORG"
	Photo        = "PHOTO"
	ProdID       = "PRODID"
	Related      = "RELATED"
	Rev          = "REV"
	Role         = "ROLE"
	Sound        = "SOUND"
	Source       = "SOURCE"
	Tel          = "TEL"
	Title        = "TITLE"
	TZ           = "TZ"
	UID          = "UID"
	URL          = "URL"
	Version      = "VERSION"
	XML          = "XML"
)

// registry is the fixed set of vCard 4 property names. Names outside this
// set are only acceptable when they have the experimental x- shape.
var registry = map[string]struct{}{
	Adr: {}, Anniversary: {}, Bday: {}, Begin: {}, CalAdrURI: {},
	CalURI: {}, Categories: {}, ClientPIDMap: {}, Email: {}, End: {},
	FBURL: {}, FN: {}, Gender: {}, Geo: {}, IMPP: {}, Key: {}, Kind: {},
	Lang: {}, Logo: {}, Member: {}, N: {}, Nickname: {}, Note: {}, Org: {},
	Photo: {}, ProdID: {}, Related: {}, Rev: {}, Role: {}, Sound: {},
	Source: {}, Tel: {}, Title: {}, TZ: {}, UID: {}, URL: {}, Version: {},
	XML: {},
}

// Recognized returns true when the given name, compared case-insensitively,
// is in the vCard 4 property registry.
func Recognized(name string) bool {
	_, ok := registry[strings.ToUpper(name)]
	return ok
}

// experimentalToken matches the x- shape shared by experimental property
// names, parameter names, and several parameter values.
var experimentalToken = regexp.MustCompile(`^(?i:x-[a-z0-9-]+)$`)

// IsExperimental returns true when the given token has the experimental
// x- shape.
func IsExperimental(token string) bool {
	return experimentalToken.MatchString(token)
}

// kindValues is the enumeration RFC 6350 allows for the KIND property.
var kindValues = map[string]struct{}{
	"individual": {},
	"group":      {},
	"org":        {},
	"location":   {},
}

// typeProperties is the set of properties the TYPE parameter may be set on.
var typeProperties = map[string]struct{}{
	FN: {}, Nickname: {}, Photo: {}, Adr: {}, Tel: {}, Email: {},
	IMPP: {}, Lang: {}, TZ: {}, Geo: {}, Title: {}, Role: {}, Logo: {},
	Org: {}, Related: {}, Categories: {}, Note: {}, Sound: {}, URL: {},
	Key: {}, FBURL: {}, CalAdrURI: {}, CalURI: {},
}

// telTypeValues are TYPE values meaningful only on TEL.
var telTypeValues = map[string]struct{}{
	"text": {}, "voice": {}, "fax": {}, "cell": {}, "video": {},
	"pager": {}, "textphone": {},
}

// relatedTypeValues are TYPE values meaningful only on RELATED.
var relatedTypeValues = map[string]struct{}{
	"contact": {}, "acquaintance": {}, "friend": {}, "met": {},
	"co-worker": {}, "colleague": {}, "co-resident": {}, "neighbor": {},
	"child": {}, "parent": {}, "sibling": {}, "spouse": {}, "kin": {},
	"muse": {}, "crush": {}, "date": {}, "sweetheart": {}, "me": {},
	"agent": {}, "emergency": {},
}

// valueTypes is the VALUE parameter enumeration from RFC 6350.
var valueTypes = map[string]struct{}{
	"text": {}, "uri": {}, "date": {}, "time": {}, "date-time": {},
	"date-and-or-time": {}, "timestamp": {}, "boolean": {}, "integer": {},
	"float": {}, "utc-offset": {}, "language-tag": {},
}

// Shape patterns for the remaining validated parameters. These are
// deliberately not the full RFC grammars; they are just tight enough to
// catch values that cannot possibly be correct.
var (
	// prefPattern accepts one or two digits. A leading zero slips through,
	// which is lenient but harmless.
	prefPattern = regexp.MustCompile(`^\d{1,2}$`)

	// pidPattern accepts a digit or digit.digit pair.
	pidPattern = regexp.MustCompile(`^\d(\.\d)?$`)

	// sortAsPattern accepts a comma-separated list of sort strings,
	// optionally quoted as a whole.
	sortAsPattern = regexp.MustCompile(`^"[^"]+"$|^[^";:]+$`)

	// geoPattern requires the quoted URI form RFC 6350 specifies for the
	// GEO parameter.
	geoPattern = regexp.MustCompile(`^"[^"]+"$`)

	// mediatypePattern accepts a bare type/subtype pair.
	mediatypePattern = regexp.MustCompile(`^(?i:[a-z0-9!#$&.+^_-]+/[a-z0-9!#$&.+^_-]+)$`)
)
