package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-vcard/card/property"
	"github.com/zostay/go-vcard/encoding"
)

func TestCharsetDecoder(t *testing.T) {
	t.Parallel()

	s, err := encoding.CharsetDecoder("ISO-8859-1", []byte("Jos\xe9"))
	require.NoError(t, err)
	assert.Equal(t, "José", s)

	_, err = encoding.CharsetDecoder("NOT-A-CHARSET", []byte("x"))
	assert.Error(t, err)
}

func TestPropertyTextUsesDecoder(t *testing.T) {
	t.Parallel()

	// importing this package installs the decoder hook
	require.NotNil(t, property.CharsetDecoder)

	p, err := property.Parse("FN;charset=ISO-8859-1:Jos\xe9")
	require.NoError(t, err)

	assert.Equal(t, "Jos\xe9", p.Value())
	assert.Equal(t, "José", p.Text())
}
