package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// UpdateEnv names the environment variable that rewrites golden files
// instead of comparing against them.
const UpdateEnv = "GOLDEN_UPDATE"

// GoldenPath returns testdata/<name>.golden relative to the package under
// test.
func GoldenPath(name string) string {
	return filepath.Join("testdata", name+".golden")
}

// Golden compares got against testdata/<name>.golden.
// If GOLDEN_UPDATE is set, the golden file is rewritten with got.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	path := GoldenPath(name)
	if os.Getenv(UpdateEnv) != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "failed to create testdata dir")
		require.NoError(t, os.WriteFile(path, got, 0644), "failed to update golden file")
		return
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read golden file %s\nGot:\n%s", path, got)

	// Strings give a readable diff on mismatch.
	assert.Equal(t, string(want), string(got), "output mismatch for %s", name)
}

// GoldenString is like Golden but takes a string.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()
	Golden(t, name, []byte(got))
}
