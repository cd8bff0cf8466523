package card

import (
	"fmt"
	"strings"

	"github.com/qmuntal/stateless"

	"github.com/zostay/go-vcard/card/property"
)

// Assembly proceeds Start → InBody → Done. Only the opening transition can
// fail; everything after BEGIN:VCARD is handled leniently.
const (
	stateStart  = "Start"
	stateInBody = "InBody"
	stateDone   = "Done"
)

const (
	triggerBegin = "Begin"
	triggerEnd   = "End"
)

// newAssembler builds the card assembly state machine.
func newAssembler() *stateless.StateMachine {
	sm := stateless.NewStateMachine(stateStart)
	sm.Configure(stateStart).Permit(triggerBegin, stateInBody)
	sm.Configure(stateInBody).Permit(triggerEnd, stateDone)
	return sm
}

// Parse consumes vCard text into a Card. The text is unfolded, split into
// content lines, and fed through the assembly state machine: the first line
// must parse as BEGIN with value VCARD or parsing fails with
// ErrMalformedCard. After that, VERSION sets the card's version string, END
// halts consumption immediately (any later lines are ignored, not errors),
// registry and experimental names are appended in order, well-formed lines
// with unrecognized names are silently dropped, and lines that do not match
// the content line grammar at all degrade to unsupported markers that keep
// their place on the card.
//
// Only the opening line's structure is fatal. Everything else degrades, so
// one garbage line inside a card never loses the rest of it.
func Parse(text string) (*Card, error) {
	c := &Card{}
	sm := newAssembler()

	lines := splitLines(property.DefaultFoldEncoding.Unfold(text))
	for _, line := range lines {
		switch sm.MustState() {
		case stateStart:
			p, err := property.Parse(line)
			if err != nil || p.Name() != property.Begin || !strings.EqualFold(p.Value(), "VCARD") {
				return nil, fmt.Errorf("%q: %w", line, ErrMalformedCard)
			}
			if err := sm.Fire(triggerBegin); err != nil {
				return nil, err
			}

		case stateInBody:
			p := property.ParseLenient(line)
			switch {
			case p.Name() == property.Version:
				c.version = p.Value()
			case p.Name() == property.End:
				if err := sm.Fire(triggerEnd); err != nil {
					return nil, err
				}
			case p.Unsupported() && p.Name() != "":
				// well-formed but unrecognized name, drop it
			default:
				c.Append(p)
			}
		}

		if sm.MustState() == stateDone {
			break
		}
	}

	if sm.MustState() == stateStart {
		return nil, fmt.Errorf("no content lines: %w", ErrMalformedCard)
	}

	return c, nil
}

// splitLines breaks unfolded vCard text into content lines. Any of the
// supported line breaks is accepted and blank lines are skipped.
func splitLines(text string) []string {
	s := strings.ReplaceAll(text, property.CRLF.String(), property.LF.String())
	s = strings.ReplaceAll(s, property.CR.String(), property.LF.String())

	raw := strings.Split(s, property.LF.String())
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
