package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/matchy/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func loadTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "state.toml")
	store, err := Load(context.Background(), path)
	require.NoError(t, err)
	return store, path
}

func group(ids ...domain.MemberID) domain.Group {
	g := make(domain.Group, 0, len(ids))
	for _, id := range ids {
		g = append(g, domain.Participant{ID: id})
	}
	return g
}

func TestLoadMissingFileCreatesCurrentVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "state.toml")
	store, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, domain.NewState(), store.Snapshot())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 5")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, path := loadTestStore(t)

	require.NoError(t, store.RecordMatches(ctx, []domain.Group{group("U1", "U2", "U3")}, baseTime))
	require.NoError(t, store.SetScope(ctx, "U1", domain.ScopeMatcher, true))
	require.NoError(t, store.SetChannelMembership(ctx, "U2", "C1", true))
	require.NoError(t, store.PauseInChannel(ctx, "U3", "C1", baseTime.Add(7*24*time.Hour)))
	require.NoError(t, store.UpsertScheduledTask(ctx, "C1", 3, 0, 9))

	reloaded, err := Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, store.Snapshot(), reloaded.Snapshot())
	assert.True(t, reloaded.HasScope("U1", domain.ScopeMatcher))
	assert.True(t, reloaded.IsActiveInChannel("U2", "C1"))

	deadline, paused := reloaded.ReactivationDeadline("U3", "C1")
	assert.True(t, paused)
	assert.Equal(t, baseTime.Add(7*24*time.Hour), deadline)
}

func TestNewStoreUsesConfiguredPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.toml")
	cfg := viper.New()
	cfg.Set(StatePathKey, path)

	store, err := NewStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestNewStoreDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore(context.Background(), viper.New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".matchy", "state.toml"), store.Path())
}

func TestLoadMalformedTOMLReturnsSchemaError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("users = ["), 0o600))

	_, err := Load(context.Background(), path)
	require.ErrorIs(t, err, domain.ErrSchemaValidation)
	assert.ErrorContains(t, err, "decode state file")
}

func TestLoadFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 999\n"), 0o600))

	_, err := Load(context.Background(), path)
	require.ErrorIs(t, err, domain.ErrSchemaValidation)
	assert.ErrorContains(t, err, "unsupported state schema version")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 5",
		"",
		"[users.U1]",
		"nickname = \"bob\"",
		"",
	}, "\n")), 0o600))

	_, err := Load(context.Background(), path)
	require.ErrorIs(t, err, domain.ErrSchemaValidation)
}

func TestLoadRejectsInvalidDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.toml")
	original := strings.Join([]string{
		"version = 5",
		"",
		"[[tasks.C1.match_tasks]]",
		"members_min = 3",
		"weekday = 0",
		"hour = 9",
		"",
		"[[tasks.C1.match_tasks]]",
		"members_min = 4",
		"weekday = 0",
		"hour = 9",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(original), 0o600))

	_, err := Load(context.Background(), path)
	require.ErrorIs(t, err, domain.ErrSchemaValidation)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestLoadCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, filepath.Join(t.TempDir(), "state.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestMutationCanceledContextLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	store, _ := loadTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.SetScope(ctx, "U1", domain.ScopeMatcher, true)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, store.HasScope("U1", domain.ScopeMatcher))
}

func TestFailedValidationLeavesMemoryAndFileUntouched(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, path := loadTestStore(t)
	require.NoError(t, store.UpsertScheduledTask(ctx, "C1", 3, 0, 9))

	before, err := os.ReadFile(path)
	require.NoError(t, err)
	snapshot := store.Snapshot()

	err = store.update(ctx, func(state *domain.State) error {
		state.Tasks["C1"] = append(state.Tasks["C1"], domain.ChannelTask{MembersMin: 5, Weekday: 0, Hour: 9})
		return nil
	})
	require.ErrorIs(t, err, domain.ErrSchemaValidation)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, snapshot, store.Snapshot())
}

func TestFailedMutationClosureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	store, _ := loadTestStore(t)
	boom := errors.New("boom")

	err := store.update(context.Background(), func(state *domain.State) error {
		state.User("U1")
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, store.Snapshot().Users)
}

func TestFailedWriteLeavesMemoryUntouched(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, path := loadTestStore(t)

	// A directory in place of the document makes the final rename fail.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0o600))

	err := store.SetScope(ctx, "U1", domain.ScopeMatcher, true)
	require.ErrorIs(t, err, domain.ErrStorageIO)
	assert.False(t, store.HasScope("U1", domain.ScopeMatcher))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"), "temp file %s left behind", entry.Name())
	}
}

func TestUnchangedMutationSkipsWrite(t *testing.T) {
	t.Parallel()

	store, path := loadTestStore(t)
	info, err := os.Stat(path)
	require.NoError(t, err)

	reactivated, err := store.ReactivateDue(context.Background(), "C1", baseTime)
	require.NoError(t, err)
	assert.Empty(t, reactivated)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), after.ModTime())
}
