package application

import (
	"time"

	"github.com/bnema/matchy/internal/domain"
)

type ScheduledRun struct {
	Channel domain.ChannelID
	Task    domain.ChannelTask
	Next    time.Time
}

// ChannelMatch is the outcome of one scheduled run.
type ChannelMatch struct {
	Channel    domain.ChannelID
	MembersMin int
	Groups     []domain.Group
	Err        error
}

type PausedMember struct {
	Member domain.Member
	Until  time.Time
}

// ChannelRoster is who takes part in a channel and when it is matched next.
type ChannelRoster struct {
	Channel  domain.ChannelID
	Active   []domain.Member
	Paused   []PausedMember
	Schedule []ScheduledRun
}
