package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/matchy/internal/domain"
	"github.com/bnema/matchy/internal/logging"
	"github.com/bnema/matchy/internal/ports"
)

// ReminderLookahead is how far ahead UpcomingTasks looks for runs to announce.
const ReminderLookahead = 24 * time.Hour

// MatchService turns channel rosters into committed groups.
type MatchService struct {
	store    ports.StateStore
	assigner ports.Assigner
	clock    ports.Clock
	logger   ports.Logger
}

func NewMatchService(store ports.StateStore, assigner ports.Assigner, clock ports.Clock, logger ports.Logger) *MatchService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logging.Nop{}
	}

	return &MatchService{
		store:    store,
		assigner: assigner,
		clock:    clock,
		logger:   logger,
	}
}

// ActiveMembers reactivates members whose pause ran out, then keeps the
// candidates that take part in channel, in their given order.
func (s *MatchService) ActiveMembers(ctx context.Context, channel domain.ChannelID, candidates []domain.Member) ([]domain.Member, error) {
	if err := domain.CheckMembers(candidates); err != nil {
		return nil, err
	}

	reactivated, err := s.store.ReactivateDue(ctx, channel, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("reactivate paused members: %w", err)
	}
	if len(reactivated) > 0 {
		s.logger.Info("reactivated paused members", "channel", channel, "count", len(reactivated))
	}

	active := make([]domain.Member, 0, len(candidates))
	for _, member := range candidates {
		if s.store.IsActiveInChannel(member.MemberID(), channel) {
			active = append(active, member)
		}
	}
	return active, nil
}

// Preview computes groups for the channel's active members without recording
// them.
func (s *MatchService) Preview(ctx context.Context, cmd MatchCommand) ([]domain.Group, error) {
	active, err := s.ActiveMembers(ctx, cmd.Channel, cmd.Candidates)
	if err != nil {
		return nil, err
	}

	groups, err := s.assigner.Assign(ctx, active, cmd.PerGroup, !cmd.NoFallback, s.store)
	if err != nil {
		return nil, fmt.Errorf("assign groups in %s: %w", cmd.Channel, err)
	}
	return groups, nil
}

// Commit records groups as matched now on behalf of actor, who needs the
// matcher scope.
func (s *MatchService) Commit(ctx context.Context, actor domain.MemberID, groups []domain.Group) error {
	if err := requireMatcher(s.store, actor); err != nil {
		return err
	}
	return s.record(ctx, groups)
}

func (s *MatchService) record(ctx context.Context, groups []domain.Group) error {
	if len(groups) == 0 {
		return nil
	}
	if err := s.store.RecordMatches(ctx, groups, s.clock.Now()); err != nil {
		return fmt.Errorf("record matches: %w", err)
	}
	return nil
}

// MatchChannel previews and commits groups for cmd.Channel. cmd.Actor needs
// the matcher scope.
func (s *MatchService) MatchChannel(ctx context.Context, cmd MatchCommand) ([]domain.Group, error) {
	if err := requireMatcher(s.store, cmd.Actor); err != nil {
		return nil, err
	}
	return s.matchChannel(ctx, cmd)
}

func (s *MatchService) matchChannel(ctx context.Context, cmd MatchCommand) ([]domain.Group, error) {
	groups, err := s.Preview(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if err := s.record(ctx, groups); err != nil {
		return nil, err
	}

	s.logger.Info("matched channel", "channel", cmd.Channel, "groups", len(groups))
	return groups, nil
}

// RunDueTasks matches every channel with a task due at at. Scheduled runs
// need no actor. A failing channel does not stop the others; their errors
// are joined.
func (s *MatchService) RunDueTasks(ctx context.Context, at time.Time, roster Roster) ([]ChannelMatch, error) {
	due := s.store.ListDueTasks(at)
	results := make([]ChannelMatch, 0, len(due))

	var errs []error
	for _, task := range due {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := ChannelMatch{Channel: task.Channel, MembersMin: task.MembersMin}
		candidates, err := roster(task.Channel)
		if err == nil {
			result.Groups, err = s.matchChannel(ctx, MatchCommand{
				Channel:    task.Channel,
				Candidates: candidates,
				PerGroup:   task.MembersMin,
			})
		}
		if err != nil {
			result.Err = err
			errs = append(errs, fmt.Errorf("channel %s: %w", task.Channel, err))
			s.logger.Error("scheduled match failed", "channel", task.Channel, "error", err)
		}
		results = append(results, result)
	}

	return results, errors.Join(errs...)
}

// UpcomingTasks returns the tasks that fire one ReminderLookahead after at.
func (s *MatchService) UpcomingTasks(at time.Time) []domain.DueTask {
	return s.store.ListDueTasks(at.Add(ReminderLookahead))
}
