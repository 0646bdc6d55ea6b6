package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/matchy/internal/domain"
	"github.com/bnema/matchy/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600))
	return path
}

func TestLoadMigratesUnversionedDocument(t *testing.T) {
	t.Parallel()

	path := writeFixture(t,
		"[matchees.1.matches]",
		"2 = \"Mon Oct  5 09:00:00 2026\"",
		"",
		"[matchees.1.channels.10]",
		"active = false",
		"reactivate = \"Tue Oct 13 09:00:00 2026\"",
		"",
		"[matchees.2.matches]",
		"1 = \"Mon Oct 05 09:00:00 2026\"",
		"",
		"[matchees.2.channels.10]",
		"active = true",
		"reactivate = \"\"",
		"",
		"[history.\"Mon Oct 05 09:00:00 2026\"]",
		"groups = [{ members = [\"1\", \"2\"] }]",
		"",
	)

	store, err := Load(context.Background(), path)
	require.NoError(t, err)

	matchedAt := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, map[domain.MemberID]time.Time{"2": matchedAt}, store.UserMatches("1"))
	assert.Equal(t, map[domain.MemberID]time.Time{"1": matchedAt}, store.UserMatches("2"))

	deadline, paused := store.ReactivationDeadline("1", "10")
	assert.True(t, paused)
	assert.Equal(t, time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), deadline)
	assert.True(t, store.IsActiveInChannel("2", "10"))

	snapshot := store.Snapshot()
	assert.Equal(t, domain.CurrentStateVersion, snapshot.Version)
	assert.Empty(t, snapshot.Tasks)
	require.NoError(t, snapshot.Validate())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 5")
	assert.Contains(t, string(data), "2026-10-05 09:00:00.000000")
	assert.NotContains(t, string(data), "matchees")
	assert.NotContains(t, string(data), "history")
}

func TestLoadMigratesVersionFourTasks(t *testing.T) {
	t.Parallel()

	path := writeFixture(t,
		"version = 4",
		"",
		"[users.1.channels.10]",
		"active = false",
		"reactivate = \"2026-10-13 09:00:00.000000\"",
		"",
		"[[tasks.10.match_tasks]]",
		"members_min = 3",
		"weekdays = 0",
		"hours = 9",
		"",
		"[[tasks.10.match_tasks]]",
		"members_min = 4",
		"weekdays = 4",
		"hours = 17",
		"",
	)

	store, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []domain.ChannelTask{
		{MembersMin: 3, Weekday: 0, Hour: 9},
		{MembersMin: 4, Weekday: 4, Hour: 17},
	}, store.ListScheduledTasks("10"))

	deadline, paused := store.ReactivationDeadline("1", "10")
	assert.True(t, paused)
	assert.Equal(t, time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC), deadline)
}

func TestLoadEveryHistoricalVersionReachesCurrent(t *testing.T) {
	t.Parallel()

	fixtures := map[int][]string{
		0: {"[matchees.1.matches]", "2 = \"Mon Oct 05 09:00:00 2026\"", "", "[history]", ""},
		1: {"version = 1", "", "[users.1.matches]", "2 = \"Mon Oct 05 09:00:00 2026\"", ""},
		2: {"version = 2", "", "[users.1.matches]", "2 = \"2026-10-05 09:00:00.000000\"", "", "[history]", ""},
		3: {"version = 3", "", "[users.1.matches]", "2 = \"2026-10-05 09:00:00.000000\"", "", "[history]", "", "[tasks]", ""},
		4: {"version = 4", "", "[users.1.matches]", "2 = \"2026-10-05 09:00:00.000000\"", "", "[tasks]", ""},
		5: {"version = 5", "", "[users.1.matches]", "2 = \"2026-10-05 09:00:00.000000\"", "", "[tasks]", ""},
	}

	for version, lines := range fixtures {
		path := writeFixture(t, lines...)

		store, err := Load(context.Background(), path)
		require.NoError(t, err, "version %d", version)

		snapshot := store.Snapshot()
		assert.Equal(t, domain.CurrentStateVersion, snapshot.Version, "version %d", version)
		require.NoError(t, snapshot.Validate(), "version %d", version)
		assert.Equal(t, time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC), snapshot.Users["1"].Matches["2"], "version %d", version)
	}
}

func TestLoadUnparsableLegacyTimestampFailsMigration(t *testing.T) {
	t.Parallel()

	lines := []string{
		"version = 1",
		"",
		"[users.1.matches]",
		"2 = \"last tuesday\"",
		"",
	}
	path := writeFixture(t, lines...)

	_, err := Load(context.Background(), path)
	require.ErrorIs(t, err, domain.ErrMigrationFailure)
	assert.ErrorContains(t, err, "migrate state v1 to v2")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, "\n"), string(data))
}

func TestLoadCurrentVersionDoesNotRewrite(t *testing.T) {
	t.Parallel()

	lines := []string{"version = 5", "", "[users.1.matches]", "2 = \"2026-10-05 09:00:00.000000\"", ""}
	path := writeFixture(t, lines...)

	_, err := Load(context.Background(), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, "\n"), string(data))
}

func TestMigrateStampsVersionAfterEachStep(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		keyVersion: int64(2),
		keyUsers:   map[string]any{},
		"history":  map[string]any{},
	}

	migrated, err := migrate(raw, logging.Nop{})
	require.NoError(t, err)
	assert.True(t, migrated)
	assert.Equal(t, int64(domain.CurrentStateVersion), raw[keyVersion])
	assert.NotContains(t, raw, "history")
	assert.Contains(t, raw, keyTasks)
}

func TestMigrateRejectsWrongShapes(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		keyVersion: int64(1),
		keyUsers:   map[string]any{"1": "not a table"},
	}

	_, err := migrate(raw, logging.Nop{})
	require.ErrorIs(t, err, domain.ErrMigrationFailure)

	_, err = migrate(map[string]any{keyVersion: "five"}, logging.Nop{})
	require.ErrorIs(t, err, domain.ErrSchemaValidation)
}

func TestMigrationChainCoversEveryVersion(t *testing.T) {
	t.Parallel()

	assert.Len(t, stateMigrations, domain.CurrentStateVersion)
}
