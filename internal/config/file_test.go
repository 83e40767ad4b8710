package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polar.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// ── behavior matrix ───────────────────────────────────────────────────────────

// TestFileProvider_UnspecifiedMissing verifies that a missing file at the
// default location is tolerated and yields an empty tree.
func TestFileProvider_UnspecifiedMissing(t *testing.T) {
	p := fileProvider{path: filepath.Join(t.TempDir(), "polar.toml")}

	tree, err := p.data(ProfileDefault)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

// TestFileProvider_SpecifiedMissing verifies that an explicitly requested
// file that does not exist fails, naming the exact path.
func TestFileProvider_SpecifiedMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "i_definitely_dont_exist.toml")
	p := newFileProvider(path)

	_, err := p.data(ProfileDefault)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.Contains(t, err.Error(), path)
}

// TestFileProvider_Directory verifies that a path pointing at a directory
// fails whether or not it was explicitly requested.
func TestFileProvider_Directory(t *testing.T) {
	dir := t.TempDir()

	_, err := newFileProvider(dir).data(ProfileDefault)
	assert.ErrorIs(t, err, ErrSourceIsDirectory)

	_, err = fileProvider{path: dir}.data(ProfileDefault)
	assert.ErrorIs(t, err, ErrSourceIsDirectory)
}

// TestFileProvider_ParseError verifies that invalid TOML surfaces as a
// parse error wrapping the decoder's cause.
func TestFileProvider_ParseError(t *testing.T) {
	path := writeConfigFile(t, "[default\naddress = ")

	_, err := newFileProvider(path).data(ProfileDefault)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceParse)
	assert.Contains(t, err.Error(), path)
}

// ── parsing ───────────────────────────────────────────────────────────────────

// TestFileProvider_ProfileSections verifies that top-level tables become
// profile trees, with nested tables kept inside their profile.
func TestFileProvider_ProfileSections(t *testing.T) {
	path := writeConfigFile(t, `
[default]
address = "1.1.1.1"
port = 1111

[default.database]
host = "1.1.1.1"

[custom]
address = "0.0.0.0"
`)

	tree, err := newFileProvider(path).data(ProfileDefault)
	require.NoError(t, err)
	require.Contains(t, tree, "default")
	require.Contains(t, tree, "custom")

	address, ok := tree["default"].stringAt("address")
	require.True(t, ok)
	assert.Equal(t, "1.1.1.1", address)

	port, ok := tree["default"].integerAt("port")
	require.True(t, ok)
	assert.Equal(t, int64(1111), port)

	host, ok := tree["default"].stringAt("database.host")
	require.True(t, ok)
	assert.Equal(t, "1.1.1.1", host)

	address, ok = tree["custom"].stringAt("address")
	require.True(t, ok)
	assert.Equal(t, "0.0.0.0", address)
}

// TestFileProvider_EmptyProfile verifies that a file declaring an empty
// [default] section contributes an empty tree for it, not an error.
func TestFileProvider_EmptyProfile(t *testing.T) {
	path := writeConfigFile(t, "[default]\n")

	tree, err := newFileProvider(path).data(ProfileDefault)
	require.NoError(t, err)
	require.Contains(t, tree, "default")
	assert.Empty(t, tree["default"])
}

// TestFileProvider_TopLevelScalarsDropped verifies that keys outside any
// profile section are not smuggled into a profile.
func TestFileProvider_TopLevelScalarsDropped(t *testing.T) {
	path := writeConfigFile(t, `
stray = "value"

[default]
address = "1.1.1.1"
`)

	tree, err := newFileProvider(path).data(ProfileDefault)
	require.NoError(t, err)
	assert.NotContains(t, tree, "stray")
	assert.Contains(t, tree, "default")
}
