package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionNeedsNoState(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)

	_, err = os.Stat(filepath.Join(home, ".matchy", "state.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestMemberJoinRequiresFlags(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "member", "join", "--user", "U1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"channel\" not set")
}

func TestJoinThenMatchRecordsHistory(t *testing.T) {
	home := t.TempDir()
	membersPath := writeMembersFixture(t, home, "U1", "U2", "U3", "U4")

	for _, user := range []string{"U1", "U2", "U3", "U4"} {
		_, _, err := executeCLI(t, home, "member", "join", "--user", user, "--channel", "C1")
		require.NoError(t, err)
	}
	_, _, err := executeCLI(t, home, "scope", "grant", "--user", "ADMIN")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "match", "--actor", "ADMIN", "--channel", "C1", "--members", membersPath, "--per-group", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Matched groups")
	assert.Contains(t, stdout, "channel: C1 · groups: 2")
	assert.Contains(t, stdout, "Group 1 (2)")
	assert.Contains(t, stdout, "Group 2 (2)")

	stdout, _, err = executeCLI(t, home, "match", "history", "--user", "U1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Match history for U1")
	assert.Contains(t, stdout, "partners: 1")
	assert.Contains(t, stdout, "today")

	state, err := os.ReadFile(filepath.Join(home, ".matchy", "state.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(state), "version = 5")
	assert.Contains(t, string(state), "[users.U1.matches]")
}

func TestMatchDryRunRecordsNothing(t *testing.T) {
	home := t.TempDir()
	membersPath := writeMembersFixture(t, home, "U1", "U2")

	for _, user := range []string{"U1", "U2"} {
		_, _, err := executeCLI(t, home, "member", "join", "--user", user, "--channel", "C1")
		require.NoError(t, err)
	}

	stdout, _, err := executeCLI(t, home, "match", "--channel", "C1", "--members", membersPath, "--per-group", "2", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Proposed groups")
	assert.Contains(t, stdout, "U2 and U1")

	stdout, _, err = executeCLI(t, home, "match", "history", "--user", "U1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No matches recorded.")
}

func TestMatchWithoutMatcherScopeRecordsNothing(t *testing.T) {
	home := t.TempDir()
	membersPath := writeMembersFixture(t, home, "U1", "U2")

	for _, user := range []string{"U1", "U2"} {
		_, _, err := executeCLI(t, home, "member", "join", "--user", user, "--channel", "C1")
		require.NoError(t, err)
	}

	_, _, err := executeCLI(t, home, "match", "--actor", "U1", "--channel", "C1", "--members", membersPath, "--per-group", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")

	_, _, err = executeCLI(t, home, "match", "--channel", "C1", "--members", membersPath, "--per-group", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")

	stdout, _, err := executeCLI(t, home, "match", "history", "--user", "U1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No matches recorded.")

	stdout, _, err = executeCLI(t, home, "match", "--actor", "U1", "--channel", "C1", "--members", membersPath, "--per-group", "2", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Proposed groups")
}

func TestMemberListShowsActivePausedAndSchedule(t *testing.T) {
	home := t.TempDir()
	membersPath := writeMembersFixture(t, home, "U1", "U2", "U3")

	for _, user := range []string{"U1", "U2"} {
		_, _, err := executeCLI(t, home, "member", "join", "--user", user, "--channel", "C1")
		require.NoError(t, err)
	}
	_, _, err := executeCLI(t, home, "member", "pause", "--user", "U2", "--channel", "C1", "--days", "3")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "scope", "grant", "--user", "ADMIN")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "schedule", "set", "--actor", "ADMIN", "--channel", "C1", "--weekday", "4", "--hour", "12")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "member", "list", "--channel", "C1", "--members", membersPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Channel members")
	assert.Contains(t, stdout, "channel: C1 · active: 1 · paused: 1")
	assert.Contains(t, stdout, "U2 paused until")
	assert.Contains(t, stdout, "Friday 12:00 UTC")
	assert.NotContains(t, stdout, "U3")
}

func TestMatchSkipsInactiveMembers(t *testing.T) {
	home := t.TempDir()
	membersPath := writeMembersFixture(t, home, "U1", "U2", "U3")

	_, _, err := executeCLI(t, home, "member", "join", "--user", "U1", "--channel", "C1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "match", "--channel", "C1", "--members", membersPath, "--per-group", "2", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "groups: 1")
	assert.NotContains(t, stdout, "U2")
}

func TestScheduleRequiresMatcherScope(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "schedule", "set", "--actor", "U1", "--channel", "C1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")

	_, _, err = executeCLI(t, home, "scope", "grant", "--user", "U1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "scope", "check", "--user", "U1")
	require.NoError(t, err)
	assert.Equal(t, "U1 has matcher\n", stdout)

	stdout, _, err = executeCLI(t, home,
		"schedule", "set",
		"--actor", "U1",
		"--channel", "C1",
		"--members-min", "4",
		"--weekday", "2",
		"--hour", "17",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "scheduled C1: groups of 4, next run")

	stdout, _, err = executeCLI(t, home, "schedule", "list", "--channel", "C1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tasks: 1")
	assert.Contains(t, stdout, "Wednesday 17:00 UTC")
	assert.Contains(t, stdout, "min 4 per group")

	stdout, _, err = executeCLI(t, home, "schedule", "due", "--at", "2026-10-21T17:20:00Z")
	require.NoError(t, err)
	assert.Equal(t, "due\tC1\t4\n", stdout)

	stdout, _, err = executeCLI(t, home, "schedule", "due", "--at", "2026-10-20T17:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "upcoming\tC1\t4\n", stdout)

	_, _, err = executeCLI(t, home, "schedule", "cancel", "--actor", "U1", "--channel", "C1")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "schedule", "list", "--channel", "C1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No scheduled matches.")
}

func TestScheduleSetRejectsInvalidHour(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "scope", "grant", "--user", "U1")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "schedule", "set", "--actor", "U1", "--channel", "C1", "--hour", "24")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestScheduleRunMatchesDueChannels(t *testing.T) {
	home := t.TempDir()
	membersPath := writeMembersFixture(t, home, "U1", "U2", "U3")

	_, _, err := executeCLI(t, home, "scope", "grant", "--user", "ADMIN")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "schedule", "set", "--actor", "ADMIN", "--channel", "C1", "--members-min", "3")
	require.NoError(t, err)
	for _, user := range []string{"U1", "U2", "U3"} {
		_, _, err := executeCLI(t, home, "member", "join", "--user", user, "--channel", "C1")
		require.NoError(t, err)
	}

	stdout, _, err := executeCLI(t, home, "schedule", "run", "--members", membersPath, "--at", "2026-10-19T09:05:00Z")
	require.NoError(t, err)
	assert.Contains(t, stdout, "channel: C1 · groups: 1")
	assert.Contains(t, stdout, "U3, U2 and U1")
}

func TestPauseThenReactivate(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "member", "join", "--user", "U1", "--channel", "C1")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "member", "pause", "--user", "U1", "--channel", "C1", "--days", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "U1 paused in C1 until")

	stdout, _, err = executeCLI(t, home, "reactivate", "--channel", "C1")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	stdout, _, err = executeCLI(t, home, "reactivate", "--channel", "C1", "--at", "2100-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "reactivated U1 in C1\n", stdout)
}

func TestReactivateRejectsBadTimestamp(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "reactivate", "--channel", "C1", "--at", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestStateFlagOverridesDefaultPath(t *testing.T) {
	home := t.TempDir()
	statePath := filepath.Join(t.TempDir(), "custom", "state.toml")

	_, _, err := executeCLI(t, home, "--state", statePath, "member", "join", "--user", "U1", "--channel", "C1")
	require.NoError(t, err)

	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[users.U1.channels.C1]")

	_, err = os.Stat(filepath.Join(home, ".matchy", "state.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestStatePathFromEnvironment(t *testing.T) {
	home := t.TempDir()
	statePath := filepath.Join(t.TempDir(), "env-state.toml")
	t.Setenv("MATCHY_STATE_PATH", statePath)

	_, _, err := executeCLI(t, home, "scope", "grant", "--user", "U1")
	require.NoError(t, err)

	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "matcher")
}

func TestConfigFileWeightsAreValidated(t *testing.T) {
	home := t.TempDir()
	configDir := filepath.Join(home, ".matchy")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[matching.weights]\nrole = -1\n"), 0o600))

	_, _, err := executeCLI(t, home, "scope", "check", "--user", "U1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wire matching engine")
}

func TestExplicitConfigMustExist(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "--config", filepath.Join(home, "missing.toml"), "scope", "check", "--user", "U1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestMetricsFileIsWrittenAfterMatch(t *testing.T) {
	home := t.TempDir()
	membersPath := writeMembersFixture(t, home, "U1", "U2")
	metricsPath := filepath.Join(home, "metrics", "matchy.prom")

	for _, user := range []string{"U1", "U2"} {
		_, _, err := executeCLI(t, home, "member", "join", "--user", user, "--channel", "C1")
		require.NoError(t, err)
	}

	_, _, err := executeCLI(t, home, "scope", "grant", "--user", "ADMIN")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "--metrics-file", metricsPath, "match", "--actor", "ADMIN", "--channel", "C1", "--members", membersPath, "--per-group", "2")
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `matchy_engine_assignments_total{outcome="matched"} 1`)
	assert.Contains(t, string(data), "matchy_engine_attempts_count 1")
}

func TestVerboseLogsToStderr(t *testing.T) {
	home := t.TempDir()

	_, stderr, err := executeCLI(t, home, "-v", "member", "join", "--user", "U1", "--channel", "C1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "user joined channel")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeMembersFixture(t *testing.T, home string, ids ...string) string {
	t.Helper()

	var doc strings.Builder
	for _, id := range ids {
		doc.WriteString("[[members]]\nid = \"" + id + "\"\n\n")
	}

	path := filepath.Join(home, "members.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc.String()), 0o600))
	return path
}
