package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_DefaultDemo(t *testing.T) {
	stdout, stderr, err := runCLI(t, "-config-dir", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "Found: Alice\n"+
		"Admins: 1\n"+
		"Created: true\n"+
		"Active users: 3\n"+
		"  - User #1: Alice (alice@example.com) - ADMIN\n"+
		"  - User #2: Bob (bob@example.com) - USER\n"+
		"  - User #4: Diana (diana@example.com) - USER\n", stdout)
	assert.Empty(t, stderr)
}

func TestRun_Version(t *testing.T) {
	stdout, _, err := runCLI(t, "-version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestRun_ConfigUsers(t *testing.T) {
	dir := t.TempDir()
	cfg := `
users:
  - name: Erin
    email: erin@example.com
    role: guest
  - name: Bad
    email: not-an-email
    role: user
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "userstore.yml"), []byte(cfg), 0644))

	stdout, stderr, err := runCLI(t, "-config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created: true\n")
	assert.Contains(t, stdout, "Created: User #5: Erin (erin@example.com) - GUEST\n")
	assert.Contains(t, stdout, "Active users: 4\n")
	assert.Equal(t, "Error: Invalid email: not-an-email\n", stderr)
}

func TestRun_CapacityFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "userstore.yml"), []byte("maxUsers: 3\n"), 0644))

	stdout, _, err := runCLI(t, "-config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created: false\n")
	assert.Contains(t, stdout, "Active users: 2\n")
}

func TestRun_VerboseLogsStoreEvents(t *testing.T) {
	_, stderr, err := runCLI(t, "-config-dir", t.TempDir(), "-verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "store: seeded users=3")
	assert.Contains(t, stderr, "store: created id=4 role=USER")
}

func TestRun_BadConfigFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "userstore.yml"), []byte("maxUsers: -5\n"), 0644))

	_, _, err := runCLI(t, "-config-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestRun_UnknownFlagFails(t *testing.T) {
	_, _, err := runCLI(t, "-nope")
	require.Error(t, err)
}
