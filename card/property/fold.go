package property

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultFoldIndent is the continuation marker placed after each fold.
	// RFC 6350 permits a single space or tab; we always write a space.
	DefaultFoldIndent = " "

	// DefaultFoldLength is the maximum length of a physical line before
	// folding occurs, per RFC 6350.
	DefaultFoldLength = 75

	// DoNotFold may be set as the fold length to disable folding entirely.
	DoNotFold = -1
)

// DefaultFoldEncoding is a FoldEncoding using the RFC 6350 settings. This is
// the recommended way to fold vCard output.
var DefaultFoldEncoding = &FoldEncoding{DefaultFoldIndent, DefaultFoldLength}

var (
	// ErrFoldIndentSpace is returned by NewFoldEncoding when a
	// non-space/non-tab character is put in the foldIndent setting.
	ErrFoldIndentSpace = errors.New("fold indent may only contain spaces and tabs")

	// ErrFoldIndentTooShort is returned by NewFoldEncoding when the
	// foldIndent is empty.
	ErrFoldIndentTooShort = errors.New("fold indent must contain at least one space or tab")

	// ErrFoldLengthTooShort is returned by NewFoldEncoding when the fold
	// length is too short to hold the indent plus any content at all.
	ErrFoldLengthTooShort = errors.New("fold length is too short")
)

// FoldEncoding provides the tooling for folding and unfolding vCard content
// lines. A content line longer than the fold length is split across multiple
// physical lines, each continuation line starting with the fold indent.
type FoldEncoding struct {
	foldIndent string
	foldLength int
}

// NewFoldEncoding creates a FoldEncoding with the given settings. The
// foldIndent must be one or more space or tab characters. The foldLength
// must either be DoNotFold or longer than the indent. If the given inputs do
// not meet these requirements, an error is returned.
func NewFoldEncoding(foldIndent string, foldLength int) (*FoldEncoding, error) {
	if ix := strings.IndexFunc(foldIndent, func(c rune) bool { return c != ' ' && c != '\t' }); ix >= 0 {
		return nil, ErrFoldIndentSpace
	}

	if len(foldIndent) < 1 {
		return nil, ErrFoldIndentTooShort
	}

	if foldLength != DoNotFold && foldLength <= len(foldIndent) {
		return nil, ErrFoldLengthTooShort
	}

	return &FoldEncoding{foldIndent, foldLength}, nil
}

// Unfold removes the folds from vCard text, turning each property back into
// a single logical content line. A fold is a line break immediately followed
// by exactly one space: both the break and the space are removed. Line
// breaks not followed by a space are left alone, as are any further spaces
// after the first, which belong to the content.
func (vf *FoldEncoding) Unfold(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] == '\r' || text[i] == '\n' {
			j := i + 1
			if text[i] == '\r' && j < len(text) && text[j] == '\n' {
				j++
			}
			if j < len(text) && text[j] == ' ' {
				i = j + 1
				continue
			}
		}
		out.WriteByte(text[i])
		i++
	}
	return out.String()
}

// Fold takes a single logical content line and folds it so that no physical
// line exceeds the fold length. Pure-ASCII input is chunked byte-wise.
// Anything else is chunked by code point so that a fold never lands in the
// middle of a multi-byte character. Input at or below the fold length is
// passed through. The result is trimmed of surrounding whitespace.
func (vf *FoldEncoding) Fold(line string, lbr Break) string {
	if vf.foldLength == DoNotFold {
		return strings.TrimSpace(line)
	}

	sep := lbr.String() + vf.foldIndent
	var out strings.Builder

	if isASCII(line) {
		if len(line) <= vf.foldLength {
			return strings.TrimSpace(line)
		}
		out.Grow(len(line) + len(sep)*(len(line)/vf.foldLength))
		for len(line) > vf.foldLength {
			out.WriteString(line[:vf.foldLength])
			out.WriteString(sep)
			line = line[vf.foldLength:]
		}
		out.WriteString(line)
		return strings.TrimSpace(out.String())
	}

	rs := []rune(line)
	if len(rs) <= vf.foldLength {
		return strings.TrimSpace(line)
	}
	for len(rs) > vf.foldLength {
		out.WriteString(string(rs[:vf.foldLength]))
		out.WriteString(sep)
		rs = rs[vf.foldLength:]
	}
	out.WriteString(string(rs))
	return strings.TrimSpace(out.String())
}

// isASCII returns true when the string contains no multi-byte code points.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
