package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-vcard/card/property/param"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", param.Encode("plain"))
	assert.Equal(t, `one\ntwo`, param.Encode("one\r\ntwo"))
	assert.Equal(t, `one\ntwo`, param.Encode("one\ntwo"))
	assert.Equal(t, `a\tb`, param.Encode("a\tb"))
	assert.Equal(t, `a\,b\;c`, param.Encode("a,b;c"))

	// quoted values keep their separators as-is
	assert.Equal(t, `"a,b;c"`, param.Encode(`"a,b;c"`))
	assert.Equal(t, `"a\tb"`, param.Encode("\"a\tb\""))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", param.Decode("plain"))
	assert.Equal(t, "one\ntwo", param.Decode(`one\ntwo`))
	assert.Equal(t, "a\tb", param.Decode(`a\tb`))
	assert.Equal(t, "a,b;c", param.Decode(`a\,b\;c`))
	assert.Equal(t, `"a,b"`, param.Decode(`"a,b"`))
}

func TestDecodeInvertsEncode(t *testing.T) {
	t.Parallel()

	for _, v := range []string{
		"plain",
		"a,b;c",
		"tab\there",
		"line\nbreak",
		`"quoted,value"`,
	} {
		assert.Equal(t, v, param.Decode(param.Encode(v)), "value %q", v)
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"home"}, param.Split("home"))
	assert.Equal(t, []string{"home", "x-wild"}, param.Split("home,x-wild"))

	// an escaped comma is content, not a separator
	assert.Equal(t, []string{`a\,b`, "c"}, param.Split(`a\,b,c`))

	// commas inside a quoted value are content too
	assert.Equal(t, []string{`"a,b"`, "c"}, param.Split(`"a,b",c`))

	assert.Equal(t, []string{""}, param.Split(""))
}

func TestParamsAdd(t *testing.T) {
	t.Parallel()

	ps := &param.Params{}
	assert.Equal(t, 0, ps.Len())

	v, ok := ps.Get("type")
	assert.False(t, ok)
	assert.Empty(t, v)

	ps.Add("TYPE", "home")
	ps.Add("type", "x-wild")
	ps.Add("pref", "1")

	v, ok = ps.Get("Type")
	assert.True(t, ok)
	assert.Equal(t, "home,x-wild", v)

	assert.Equal(t, []string{"type", "pref"}, ps.Names())
	assert.Equal(t, 2, ps.Len())
}

func TestParamsClone(t *testing.T) {
	t.Parallel()

	ps := &param.Params{}
	ps.Add("type", "work")

	cl := ps.Clone()
	cl.Add("type", "home")

	v, _ := ps.Get("type")
	assert.Equal(t, "work", v)
	v, _ = cl.Get("type")
	assert.Equal(t, "work,home", v)
}
