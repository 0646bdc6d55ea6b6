package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	membersPath := writeMembersFixture(t, home)

	for _, user := range []string{"U1", "U2", "U3", "U4"} {
		_, stderr, err := runMatchy(t, binaryPath, home, "member", "join", "--user", user, "--channel", "C1")
		require.NoError(t, err, "stderr: %s", stderr)
	}

	_, stderr, err := runMatchy(t, binaryPath, home, "scope", "grant", "--user", "ADMIN")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runMatchy(t, binaryPath, home, "match", "--actor", "ADMIN", "--channel", "C1", "--members", membersPath, "--per-group", "2")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "groups: 2")

	_, err = os.Stat(filepath.Join(home, ".matchy", "state.toml"))
	require.NoError(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "matchy-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/matchy")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build matchy binary: %s", string(output))
	return binaryPath
}

func runMatchy(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeMembersFixture(t *testing.T, home string) string {
	t.Helper()

	members := `[[members]]
id = "U1"
roles = ["R1"]

[[members]]
id = "U2"
roles = ["R1"]

[[members]]
id = "U3"
roles = ["R2"]

[[members]]
id = "U4"
roles = ["R2"]
`

	path := filepath.Join(home, "members.toml")
	require.NoError(t, os.WriteFile(path, []byte(members), 0o644))
	return path
}
