package toml

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/bnema/matchy/internal/domain"
)

// UpsertScheduledTask replaces the channel's task at (weekday, hour) or adds a
// new one.
func (s *Store) UpsertScheduledTask(ctx context.Context, channel domain.ChannelID, membersMin, weekday, hour int) error {
	task := domain.ChannelTask{MembersMin: membersMin, Weekday: weekday, Hour: hour}
	if channel == "" {
		return fmt.Errorf("channel id is required: %w", domain.ErrInvalidArgument)
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}

	return s.update(ctx, func(state *domain.State) error {
		tasks := state.Tasks[channel]
		for i := range tasks {
			if tasks[i].SameSlot(task) {
				tasks[i] = task
				return nil
			}
		}
		state.Tasks[channel] = append(tasks, task)
		return nil
	})
}

func (s *Store) RemoveScheduledTasks(ctx context.Context, channel domain.ChannelID) error {
	return s.update(ctx, func(state *domain.State) error {
		if _, ok := state.Tasks[channel]; !ok {
			return errUnchanged
		}
		delete(state.Tasks, channel)
		return nil
	})
}

func (s *Store) ListScheduledTasks(channel domain.ChannelID) []domain.ChannelTask {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.state.Tasks[channel])
}

// ListDueTasks returns the tasks scheduled for at's weekday and hour (UTC),
// ordered by channel id.
func (s *Store) ListDueTasks(at time.Time) []domain.DueTask {
	s.mu.RLock()
	defer s.mu.RUnlock()

	at = at.UTC()
	weekday := domain.WeekdayOf(at)
	hour := at.Hour()

	var due []domain.DueTask
	for _, channel := range slices.Sorted(maps.Keys(s.state.Tasks)) {
		for _, task := range s.state.Tasks[channel] {
			if task.Weekday == weekday && task.Hour == hour {
				due = append(due, domain.DueTask{Channel: channel, MembersMin: task.MembersMin})
			}
		}
	}

	return due
}
