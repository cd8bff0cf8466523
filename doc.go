// Package vcard parses and serializes vCard contact records as defined by
// RFC 6350 (version 4).
//
// The library is split according to the layers of the format. The
// card/property package handles a single content line: folding and
// unfolding per the 75 octet rule, the group/name/parameters/value grammar,
// parameter value escaping, and the vCard 4 construction rules. Structured
// values (the compound ADR and N properties) are views over a property that
// decompose its value positionally. The card package assembles content
// lines into Card records and extracts multi-card Collections from a single
// source.
//
// Parsing is deliberately lenient in what it accepts: a property name
// outside the vCard 4 registry still parses and is carried through
// untouched, a garbage line inside a card degrades to a marker rather than
// aborting assembly, and parameters that arrived by parsing are never
// re-validated against rules that only bind at construction time. Output is
// strict: names are canonicalized, parameters render in insertion order
// with proper escaping, and long lines are folded.
//
// As much as possible, a property parsed and re-serialized unmodified
// reproduces its original bytes. This library is intended as a foundation
// for contact syncing tools, where a record that merely passes through must
// come out the way it went in.
package vcard
