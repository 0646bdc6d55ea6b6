package toml

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/matchy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertScheduledTaskReplacesSameSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, path := loadTestStore(t)

	require.NoError(t, store.UpsertScheduledTask(ctx, "C1", 3, 0, 9))
	require.NoError(t, store.UpsertScheduledTask(ctx, "C1", 5, 0, 9))
	assert.Equal(t, []domain.ChannelTask{{MembersMin: 5, Weekday: 0, Hour: 9}}, store.ListScheduledTasks("C1"))

	require.NoError(t, store.UpsertScheduledTask(ctx, "C1", 2, 3, 9))
	assert.Len(t, store.ListScheduledTasks("C1"), 2)

	reloaded, err := Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, store.ListScheduledTasks("C1"), reloaded.ListScheduledTasks("C1"))
}

func TestUpsertScheduledTaskValidatesArguments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := loadTestStore(t)

	require.ErrorIs(t, store.UpsertScheduledTask(ctx, "C1", 0, 0, 9), domain.ErrInvalidArgument)
	require.ErrorIs(t, store.UpsertScheduledTask(ctx, "C1", 3, 7, 9), domain.ErrInvalidArgument)
	require.ErrorIs(t, store.UpsertScheduledTask(ctx, "C1", 3, 0, 24), domain.ErrInvalidArgument)
	require.ErrorIs(t, store.UpsertScheduledTask(ctx, "", 3, 0, 9), domain.ErrInvalidArgument)
	assert.Empty(t, store.ListScheduledTasks("C1"))
}

func TestRemoveScheduledTasks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, path := loadTestStore(t)

	require.NoError(t, store.UpsertScheduledTask(ctx, "C1", 3, 0, 9))
	require.NoError(t, store.UpsertScheduledTask(ctx, "C2", 3, 0, 9))
	require.NoError(t, store.RemoveScheduledTasks(ctx, "C1"))
	require.NoError(t, store.RemoveScheduledTasks(ctx, "missing"))

	assert.Empty(t, store.ListScheduledTasks("C1"))
	assert.Len(t, store.ListScheduledTasks("C2"), 1)

	reloaded, err := Load(ctx, path)
	require.NoError(t, err)
	assert.Empty(t, reloaded.ListScheduledTasks("C1"))
}

func TestListDueTasksMatchesWeekdayAndHour(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := loadTestStore(t)

	require.NoError(t, store.UpsertScheduledTask(ctx, "C2", 4, 0, 9))
	require.NoError(t, store.UpsertScheduledTask(ctx, "C1", 3, 0, 9))
	require.NoError(t, store.UpsertScheduledTask(ctx, "C1", 3, 0, 10))
	require.NoError(t, store.UpsertScheduledTask(ctx, "C3", 3, 1, 9))

	// baseTime is Monday 09:00 UTC.
	due := store.ListDueTasks(baseTime.Add(42 * time.Minute))
	assert.Equal(t, []domain.DueTask{
		{Channel: "C1", MembersMin: 3},
		{Channel: "C2", MembersMin: 4},
	}, due)

	assert.Equal(t, []domain.DueTask{{Channel: "C3", MembersMin: 3}}, store.ListDueTasks(baseTime.Add(24*time.Hour)))
	assert.Empty(t, store.ListDueTasks(baseTime.Add(2*time.Hour)))

	// Non-UTC inputs are converted before matching.
	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Len(t, store.ListDueTasks(baseTime.In(tokyo)), 2)
}
