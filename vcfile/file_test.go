package vcfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-vcard/vcfile"
)

const sample = "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Jean\r\nEND:VCARD\r\n"

func TestReadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.vcf")
	_, err := vcfile.Read(path)
	assert.ErrorIs(t, err, vcfile.ErrNotExist)
}

func TestWriteThenRead(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jean.vcf")

	n, err := vcfile.Write(path, sample, false)
	require.NoError(t, err)
	assert.Equal(t, len(sample), n)

	text, err := vcfile.Read(path)
	require.NoError(t, err)
	assert.Equal(t, sample, text)
}

func TestWriteRefusesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jean.vcf")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	_, err := vcfile.Write(path, sample, false)
	assert.ErrorIs(t, err, vcfile.ErrExists)

	// the existing file is left untouched
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(b))
}

func TestWriteOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jean.vcf")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	n, err := vcfile.Write(path, sample, true)
	require.NoError(t, err)
	assert.Equal(t, len(sample), n)

	text, err := vcfile.Read(path)
	require.NoError(t, err)
	assert.Equal(t, sample, text)
}
