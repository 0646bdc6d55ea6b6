package domain

import (
	"fmt"
	"maps"
	"slices"
	"time"
)

// CurrentStateVersion is the schema version every loaded document is migrated to.
const CurrentStateVersion = 5

type State struct {
	Version int
	Users   map[MemberID]UserEntry
	Tasks   map[ChannelID][]ChannelTask
}

func NewState() State {
	return State{
		Version: CurrentStateVersion,
		Users:   map[MemberID]UserEntry{},
		Tasks:   map[ChannelID][]ChannelTask{},
	}
}

// Clone returns a deep copy that shares no maps or slices with s.
func (s State) Clone() State {
	out := State{
		Version: s.Version,
		Users:   make(map[MemberID]UserEntry, len(s.Users)),
		Tasks:   make(map[ChannelID][]ChannelTask, len(s.Tasks)),
	}
	for id, user := range s.Users {
		out.Users[id] = user.clone()
	}
	for id, tasks := range s.Tasks {
		out.Tasks[id] = slices.Clone(tasks)
	}
	return out
}

// Normalize gives the document a single canonical in-memory shape: non-nil maps,
// nil empty scope lists, UTC microsecond timestamps and no empty task lists.
func (s *State) Normalize() {
	if s.Users == nil {
		s.Users = map[MemberID]UserEntry{}
	}
	if s.Tasks == nil {
		s.Tasks = map[ChannelID][]ChannelTask{}
	}

	for id, user := range s.Users {
		if len(user.Scopes) == 0 {
			user.Scopes = nil
		}
		if user.Channels == nil {
			user.Channels = map[ChannelID]ChannelMembership{}
		}
		if user.Matches == nil {
			user.Matches = map[MemberID]time.Time{}
		}
		for channel, membership := range user.Channels {
			if !membership.ReactivateAt.IsZero() {
				membership.ReactivateAt = NormalizeTime(membership.ReactivateAt)
			}
			user.Channels[channel] = membership
		}
		for other, at := range user.Matches {
			user.Matches[other] = NormalizeTime(at)
		}
		s.Users[id] = user
	}

	for channel, tasks := range s.Tasks {
		if len(tasks) == 0 {
			delete(s.Tasks, channel)
		}
	}
}

// Validate checks the typed document invariants.
func (s State) Validate() error {
	if s.Version != CurrentStateVersion {
		return fmt.Errorf("version %d, want %d: %w", s.Version, CurrentStateVersion, ErrSchemaValidation)
	}

	for _, id := range slices.Sorted(maps.Keys(s.Users)) {
		if id == "" {
			return fmt.Errorf("user with empty id: %w", ErrSchemaValidation)
		}
		user := s.Users[id]
		for _, scope := range user.Scopes {
			if scope == "" {
				return fmt.Errorf("user %s has an empty scope: %w", id, ErrSchemaValidation)
			}
		}
		for channel := range user.Channels {
			if channel == "" {
				return fmt.Errorf("user %s has a channel with empty id: %w", id, ErrSchemaValidation)
			}
		}
		for other, at := range user.Matches {
			if other == "" {
				return fmt.Errorf("user %s has a match with empty id: %w", id, ErrSchemaValidation)
			}
			if at.IsZero() {
				return fmt.Errorf("user %s match with %s has no timestamp: %w", id, other, ErrSchemaValidation)
			}
		}
	}

	for _, channel := range slices.Sorted(maps.Keys(s.Tasks)) {
		if channel == "" {
			return fmt.Errorf("tasks for empty channel id: %w", ErrSchemaValidation)
		}
		tasks := s.Tasks[channel]
		for i, task := range tasks {
			if err := task.Validate(); err != nil {
				return fmt.Errorf("channel %s task %d: %v: %w", channel, i, err, ErrSchemaValidation)
			}
			for _, earlier := range tasks[:i] {
				if earlier.SameSlot(task) {
					return fmt.Errorf("channel %s has duplicate task for weekday %d hour %d: %w",
						channel, task.Weekday, task.Hour, ErrSchemaValidation)
				}
			}
		}
	}

	return nil
}

// User returns the entry for id, creating an empty one in the document if needed.
func (s *State) User(id MemberID) UserEntry {
	user, ok := s.Users[id]
	if !ok {
		user = UserEntry{
			Channels: map[ChannelID]ChannelMembership{},
			Matches:  map[MemberID]time.Time{},
		}
		s.Users[id] = user
	}
	if user.Channels == nil {
		user.Channels = map[ChannelID]ChannelMembership{}
		s.Users[id] = user
	}
	if user.Matches == nil {
		user.Matches = map[MemberID]time.Time{}
		s.Users[id] = user
	}
	return user
}
