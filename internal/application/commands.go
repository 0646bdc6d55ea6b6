package application

import "github.com/bnema/matchy/internal/domain"

type ScheduleCommand struct {
	Actor      domain.MemberID
	Channel    domain.ChannelID
	MembersMin int
	Weekday    int
	Hour       int
}

type MatchCommand struct {
	// Actor is only checked when the groups are recorded.
	Actor      domain.MemberID
	Channel    domain.ChannelID
	Candidates []domain.Member
	PerGroup   int
	// NoFallback reports domain.ErrAssignmentExhausted instead of dealing
	// members round-robin.
	NoFallback bool
}

// Roster supplies the candidate members of a channel for scheduled runs.
type Roster func(channel domain.ChannelID) ([]domain.Member, error)
