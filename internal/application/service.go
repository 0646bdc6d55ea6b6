package application

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/bnema/matchy/internal/domain"
	"github.com/bnema/matchy/internal/logging"
	"github.com/bnema/matchy/internal/ports"
)

const (
	DefaultPauseDays  = 7
	DefaultMembersMin = 3
	DefaultTaskHour   = 9
)

// Service handles channel membership, scopes and the match schedule.
type Service struct {
	store  ports.StateStore
	clock  ports.Clock
	logger ports.Logger
}

func NewService(store ports.StateStore, clock ports.Clock, logger ports.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logging.Nop{}
	}

	return &Service{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

func (s *Service) Join(ctx context.Context, user domain.MemberID, channel domain.ChannelID) error {
	if err := s.store.SetChannelMembership(ctx, user, channel, true); err != nil {
		return fmt.Errorf("join channel: %w", err)
	}
	s.logger.Info("user joined channel", "user", user, "channel", channel)
	return nil
}

func (s *Service) Leave(ctx context.Context, user domain.MemberID, channel domain.ChannelID) error {
	if err := s.store.SetChannelMembership(ctx, user, channel, false); err != nil {
		return fmt.Errorf("leave channel: %w", err)
	}
	s.logger.Info("user left channel", "user", user, "channel", channel)
	return nil
}

// Pause deactivates user in channel for days (DefaultPauseDays when days <= 0)
// and returns the reactivation deadline.
func (s *Service) Pause(ctx context.Context, user domain.MemberID, channel domain.ChannelID, days int) (time.Time, error) {
	if days <= 0 {
		days = DefaultPauseDays
	}
	until := domain.NormalizeTime(s.clock.Now().AddDate(0, 0, days))

	if err := s.store.PauseInChannel(ctx, user, channel, until); err != nil {
		return time.Time{}, fmt.Errorf("pause in channel: %w", err)
	}
	s.logger.Info("user paused in channel", "user", user, "channel", channel, "until", until)
	return until, nil
}

func (s *Service) Grant(ctx context.Context, user domain.MemberID, scope domain.Scope) error {
	if err := s.store.SetScope(ctx, user, scope, true); err != nil {
		return fmt.Errorf("grant scope: %w", err)
	}
	return nil
}

func (s *Service) Revoke(ctx context.Context, user domain.MemberID, scope domain.Scope) error {
	if err := s.store.SetScope(ctx, user, scope, false); err != nil {
		return fmt.Errorf("revoke scope: %w", err)
	}
	return nil
}

func (s *Service) HasScope(user domain.MemberID, scope domain.Scope) bool {
	return s.store.HasScope(user, scope)
}

// Schedule sets the channel's recurring match at (weekday, hour) and returns
// its next run.
func (s *Service) Schedule(ctx context.Context, cmd ScheduleCommand) (ScheduledRun, error) {
	if err := requireMatcher(s.store, cmd.Actor); err != nil {
		return ScheduledRun{}, err
	}

	task := domain.ChannelTask{MembersMin: cmd.MembersMin, Weekday: cmd.Weekday, Hour: cmd.Hour}
	if err := task.Validate(); err != nil {
		return ScheduledRun{}, fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}

	if err := s.store.UpsertScheduledTask(ctx, cmd.Channel, task.MembersMin, task.Weekday, task.Hour); err != nil {
		return ScheduledRun{}, fmt.Errorf("schedule match task: %w", err)
	}
	s.logger.Info("scheduled match task",
		"channel", cmd.Channel, "members_min", task.MembersMin, "weekday", task.Weekday, "hour", task.Hour)

	return ScheduledRun{
		Channel: cmd.Channel,
		Task:    task,
		Next:    domain.NextOccurrence(task.Weekday, task.Hour, s.clock.Now()),
	}, nil
}

// Cancel removes every scheduled match for channel.
func (s *Service) Cancel(ctx context.Context, actor domain.MemberID, channel domain.ChannelID) error {
	if err := requireMatcher(s.store, actor); err != nil {
		return err
	}

	if err := s.store.RemoveScheduledTasks(ctx, channel); err != nil {
		return fmt.Errorf("cancel match tasks: %w", err)
	}
	s.logger.Info("cancelled match tasks", "channel", channel)
	return nil
}

// ChannelSchedule lists the channel's tasks with their next run after now,
// soonest first.
func (s *Service) ChannelSchedule(channel domain.ChannelID, now time.Time) []ScheduledRun {
	tasks := s.store.ListScheduledTasks(channel)
	runs := make([]ScheduledRun, 0, len(tasks))
	for _, task := range tasks {
		runs = append(runs, ScheduledRun{
			Channel: channel,
			Task:    task,
			Next:    domain.NextOccurrence(task.Weekday, task.Hour, now),
		})
	}

	slices.SortStableFunc(runs, func(a, b ScheduledRun) int { return a.Next.Compare(b.Next) })
	return runs
}

// ChannelRoster splits the candidates in channel into active and paused
// members, in their given order, alongside the channel's schedule. Candidates
// who never joined are left out. Nothing is reactivated.
func (s *Service) ChannelRoster(channel domain.ChannelID, candidates []domain.Member) (ChannelRoster, error) {
	if err := domain.CheckMembers(candidates); err != nil {
		return ChannelRoster{}, err
	}

	roster := ChannelRoster{
		Channel:  channel,
		Active:   []domain.Member{},
		Paused:   []PausedMember{},
		Schedule: s.ChannelSchedule(channel, s.clock.Now()),
	}
	for _, member := range candidates {
		id := member.MemberID()
		if s.store.IsActiveInChannel(id, channel) {
			roster.Active = append(roster.Active, member)
			continue
		}
		if until, paused := s.store.ReactivationDeadline(id, channel); paused {
			roster.Paused = append(roster.Paused, PausedMember{Member: member, Until: until})
		}
	}
	return roster, nil
}

func requireMatcher(store ports.StateStore, actor domain.MemberID) error {
	if !store.HasScope(actor, domain.ScopeMatcher) {
		return fmt.Errorf("user %s lacks the %s scope: %w", actor, domain.ScopeMatcher, domain.ErrPermissionDenied)
	}
	return nil
}
