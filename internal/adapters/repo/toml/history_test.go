package toml

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/bnema/matchy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMatchesIsSymmetric(t *testing.T) {
	t.Parallel()

	store, _ := loadTestStore(t)
	groups := []domain.Group{group("U1", "U2", "U3"), group("U4", "U5")}
	require.NoError(t, store.RecordMatches(context.Background(), groups, baseTime))

	for _, g := range groups {
		for _, a := range g {
			for _, b := range g {
				if a.MemberID() == b.MemberID() {
					continue
				}
				assert.Equal(t, store.UserMatches(a.MemberID())[b.MemberID()], store.UserMatches(b.MemberID())[a.MemberID()])
				assert.Equal(t, baseTime, store.UserMatches(a.MemberID())[b.MemberID()])
			}
		}
	}

	assert.NotContains(t, store.UserMatches("U1"), domain.MemberID("U4"))
	assert.NotContains(t, store.UserMatches("U1"), domain.MemberID("U1"))
}

func TestRecordMatchesIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, path := loadTestStore(t)
	groups := []domain.Group{group("U1", "U2"), group("U3", "U4")}
	at := baseTime.Add(123456789 * time.Nanosecond)

	require.NoError(t, store.RecordMatches(ctx, groups, at))
	once := store.Snapshot()
	onceFile, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.RecordMatches(ctx, groups, at))
	assert.Equal(t, once, store.Snapshot())

	twiceFile, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, onceFile, twiceFile)
}

func TestRecordMatchesOverwritesWithLatest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := loadTestStore(t)
	later := baseTime.Add(7 * 24 * time.Hour)

	require.NoError(t, store.RecordMatches(ctx, []domain.Group{group("U1", "U2")}, baseTime))
	require.NoError(t, store.RecordMatches(ctx, []domain.Group{group("U1", "U2")}, later))

	assert.Equal(t, later, store.UserMatches("U1")["U2"])
	assert.Equal(t, later, store.UserMatches("U2")["U1"])
}

func TestRecordMatchesRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	store, _ := loadTestStore(t)

	err := store.RecordMatches(context.Background(), []domain.Group{{nil}}, baseTime)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = store.RecordMatches(context.Background(), []domain.Group{group("U1", "U2")}, time.Time{})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Empty(t, store.Snapshot().Users)
}

func TestRelevantHistoryTimestamps(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := loadTestStore(t)
	first := baseTime.Add(-14 * 24 * time.Hour)
	second := baseTime.Add(-7 * 24 * time.Hour)

	require.NoError(t, store.RecordMatches(ctx, []domain.Group{group("U1", "U2"), group("U3", "U4")}, first))
	require.NoError(t, store.RecordMatches(ctx, []domain.Group{group("U1", "U3")}, second))
	require.NoError(t, store.RecordMatches(ctx, []domain.Group{group("U5", "U6")}, baseTime))

	assert.Equal(t, []time.Time{first, second}, store.RelevantHistoryTimestamps([]domain.MemberID{"U1", "U2", "U3", "U4"}))
	assert.Equal(t, []time.Time{second}, store.RelevantHistoryTimestamps([]domain.MemberID{"U1", "U3"}))
	assert.Empty(t, store.RelevantHistoryTimestamps([]domain.MemberID{"U1", "U5"}))
	assert.Empty(t, store.RelevantHistoryTimestamps(nil))
}

func TestUserMatchesReturnsCopy(t *testing.T) {
	t.Parallel()

	store, _ := loadTestStore(t)
	require.NoError(t, store.RecordMatches(context.Background(), []domain.Group{group("U1", "U2")}, baseTime))

	matches := store.UserMatches("U1")
	matches["U9"] = baseTime
	assert.NotContains(t, store.UserMatches("U1"), domain.MemberID("U9"))
	assert.Empty(t, store.UserMatches("nobody"))
}
