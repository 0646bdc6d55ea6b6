package domain

import (
	"slices"
	"time"
)

type ChannelID string
type Scope string

const ScopeMatcher Scope = "matcher"

type ChannelMembership struct {
	Active bool
	// ReactivateAt is zero when no reactivation is pending.
	ReactivateAt time.Time
}

func (m ChannelMembership) Paused() bool {
	return !m.ReactivateAt.IsZero()
}

type UserEntry struct {
	Scopes   []Scope
	Channels map[ChannelID]ChannelMembership
	Matches  map[MemberID]time.Time
}

func (u UserEntry) HasScope(scope Scope) bool {
	return slices.Contains(u.Scopes, scope)
}

func (u UserEntry) clone() UserEntry {
	out := UserEntry{
		Channels: make(map[ChannelID]ChannelMembership, len(u.Channels)),
		Matches:  make(map[MemberID]time.Time, len(u.Matches)),
	}
	if len(u.Scopes) > 0 {
		out.Scopes = slices.Clone(u.Scopes)
	}
	for id, membership := range u.Channels {
		out.Channels[id] = membership
	}
	for id, at := range u.Matches {
		out.Matches[id] = at
	}
	return out
}
