package property_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-vcard/card/property"
)

func TestParse(t *testing.T) {
	t.Parallel()

	p, err := property.Parse("FN:Jean Dupont")
	require.NoError(t, err)
	assert.Equal(t, "FN", p.Name())
	assert.Equal(t, "Jean Dupont", p.Value())
	assert.Empty(t, p.Group())
	assert.False(t, p.Unsupported())
}

func TestParseGroup(t *testing.T) {
	t.Parallel()

	p, err := property.Parse("item1.TEL;type=home:+33 1 23 45 67 89")
	require.NoError(t, err)
	assert.Equal(t, "item1", p.Group())
	assert.Equal(t, "TEL", p.Name())
	assert.Equal(t, "+33 1 23 45 67 89", p.Value())

	v, ok := p.GetParameter("type")
	assert.True(t, ok)
	assert.Equal(t, "home", v)
}

func TestParseCanonicalizesCase(t *testing.T) {
	t.Parallel()

	p, err := property.Parse("tel;TYPE=Home:123")
	require.NoError(t, err)
	assert.Equal(t, "TEL", p.Name())

	v, ok := p.GetParameter("TYPE")
	assert.True(t, ok)
	assert.Equal(t, "Home", v)
}

func TestParseValueMayContainColons(t *testing.T) {
	t.Parallel()

	p, err := property.Parse("URL:https://example.com/path?q=1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/path?q=1", p.Value())
}

func TestParseQuotedParameter(t *testing.T) {
	t.Parallel()

	p, err := property.Parse(`GEO;VALUE=uri:geo:48.85,2.35`)
	require.NoError(t, err)
	assert.Equal(t, "geo:48.85,2.35", p.Value())

	p, err = property.Parse(`TEL;geo="geo:48.85,2.35":123`)
	require.NoError(t, err)
	v, ok := p.GetParameter("geo")
	assert.True(t, ok)
	assert.Equal(t, `"geo:48.85,2.35"`, v)
}

func TestParseRepeatedParameterMerges(t *testing.T) {
	t.Parallel()

	p, err := property.Parse("TEL;type=home;type=cell:123")
	require.NoError(t, err)

	v, ok := p.GetParameter("type")
	assert.True(t, ok)
	assert.Equal(t, "home,cell", v)
}

func TestParseExperimentalName(t *testing.T) {
	t.Parallel()

	p, err := property.Parse("X-WILDEST-DREAMS:yes")
	require.NoError(t, err)
	assert.Equal(t, "X-WILDEST-DREAMS", p.Name())
	assert.False(t, p.Unsupported())
}

func TestParseUnknownNameIsPreserved(t *testing.T) {
	t.Parallel()

	// not in the vCard 4 registry, but its content is kept
	p, err := property.Parse("HALLUCINATING:very much so")
	require.NoError(t, err)
	assert.Equal(t, "HALLUCINATING", p.Name())
	assert.Equal(t, "very much so", p.Value())
	assert.True(t, p.Unsupported())
}

func TestParseGarbageFails(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		"",
		"no colon here",
		"…:value",
		";param=only:value",
	} {
		_, err := property.Parse(line)
		assert.ErrorIs(t, err, property.ErrUnparsableContentLine, "line %q", line)
	}
}

func TestParseLenient(t *testing.T) {
	t.Parallel()

	p := property.ParseLenient("FN:Jean")
	assert.Equal(t, "FN", p.Name())
	assert.False(t, p.Unsupported())

	// garbage degrades to a marker carrying the raw text
	p = property.ParseLenient("no colon here")
	assert.True(t, p.Unsupported())
	assert.Empty(t, p.Name())
	assert.Equal(t, "no colon here", p.Raw())
	assert.Equal(t, "no colon here", p.String())
}
