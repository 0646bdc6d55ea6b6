package ports

import (
	"context"
	"time"

	"github.com/bnema/matchy/internal/domain"
)

type StateStore interface {
	HistorySource

	RecordMatches(ctx context.Context, groups []domain.Group, at time.Time) error

	SetScope(ctx context.Context, id domain.MemberID, scope domain.Scope, enabled bool) error
	HasScope(id domain.MemberID, scope domain.Scope) bool

	SetChannelMembership(ctx context.Context, id domain.MemberID, channel domain.ChannelID, active bool) error
	PauseInChannel(ctx context.Context, id domain.MemberID, channel domain.ChannelID, until time.Time) error
	ReactivateDue(ctx context.Context, channel domain.ChannelID, now time.Time) ([]domain.MemberID, error)
	IsActiveInChannel(id domain.MemberID, channel domain.ChannelID) bool
	ReactivationDeadline(id domain.MemberID, channel domain.ChannelID) (time.Time, bool)

	UpsertScheduledTask(ctx context.Context, channel domain.ChannelID, membersMin, weekday, hour int) error
	RemoveScheduledTasks(ctx context.Context, channel domain.ChannelID) error
	ListScheduledTasks(channel domain.ChannelID) []domain.ChannelTask
	ListDueTasks(at time.Time) []domain.DueTask
}

// Assigner partitions members into groups.
type Assigner interface {
	Assign(ctx context.Context, members []domain.Member, perGroup int, allowFallback bool, history HistorySource) ([]domain.Group, error)
}
