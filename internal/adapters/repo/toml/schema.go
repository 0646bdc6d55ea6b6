package toml

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/bnema/matchy/internal/domain"
)

type stateFileSchema struct {
	Version int                           `toml:"version"`
	Users   map[string]userSchema         `toml:"users"`
	Tasks   map[string]channelTasksSchema `toml:"tasks"`
}

func (s stateFileSchema) validateVersion() error {
	if s.Version > domain.CurrentStateVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d): %w",
			s.Version, domain.CurrentStateVersion, domain.ErrSchemaValidation)
	}

	return nil
}

type userSchema struct {
	Scopes   []string                 `toml:"scopes,omitempty"`
	Matches  map[string]string        `toml:"matches,omitempty"`
	Channels map[string]channelSchema `toml:"channels,omitempty"`
}

type channelSchema struct {
	Active       bool   `toml:"active"`
	ReactivateAt string `toml:"reactivate_at,omitempty"`
}

type channelTasksSchema struct {
	MatchTasks []matchTaskSchema `toml:"match_tasks,omitempty"`
}

type matchTaskSchema struct {
	MembersMin int `toml:"members_min"`
	Weekday    int `toml:"weekday"`
	Hour       int `toml:"hour"`
}

func toSchema(state domain.State) stateFileSchema {
	file := stateFileSchema{
		Version: state.Version,
		Users:   make(map[string]userSchema, len(state.Users)),
		Tasks:   make(map[string]channelTasksSchema, len(state.Tasks)),
	}

	for id, user := range state.Users {
		encoded := userSchema{}
		for _, scope := range user.Scopes {
			encoded.Scopes = append(encoded.Scopes, string(scope))
		}
		if len(user.Matches) > 0 {
			encoded.Matches = make(map[string]string, len(user.Matches))
			for other, at := range user.Matches {
				encoded.Matches[string(other)] = formatTime(at)
			}
		}
		if len(user.Channels) > 0 {
			encoded.Channels = make(map[string]channelSchema, len(user.Channels))
			for channel, membership := range user.Channels {
				encoded.Channels[string(channel)] = channelSchema{
					Active:       membership.Active,
					ReactivateAt: formatTime(membership.ReactivateAt),
				}
			}
		}
		file.Users[string(id)] = encoded
	}

	for channel, tasks := range state.Tasks {
		encoded := make([]matchTaskSchema, 0, len(tasks))
		for _, task := range tasks {
			encoded = append(encoded, matchTaskSchema{
				MembersMin: task.MembersMin,
				Weekday:    task.Weekday,
				Hour:       task.Hour,
			})
		}
		file.Tasks[string(channel)] = channelTasksSchema{MatchTasks: encoded}
	}

	return file
}

func fromSchema(file stateFileSchema) (domain.State, error) {
	state := domain.State{
		Version: file.Version,
		Users:   make(map[domain.MemberID]domain.UserEntry, len(file.Users)),
		Tasks:   make(map[domain.ChannelID][]domain.ChannelTask, len(file.Tasks)),
	}

	for _, id := range slices.Sorted(maps.Keys(file.Users)) {
		encoded := file.Users[id]
		user := domain.UserEntry{
			Channels: make(map[domain.ChannelID]domain.ChannelMembership, len(encoded.Channels)),
			Matches:  make(map[domain.MemberID]time.Time, len(encoded.Matches)),
		}
		for _, scope := range encoded.Scopes {
			user.Scopes = append(user.Scopes, domain.Scope(scope))
		}
		for other, raw := range encoded.Matches {
			at, err := parseTime(raw)
			if err != nil {
				return domain.State{}, fmt.Errorf("user %s match with %s: %w", id, other, err)
			}
			user.Matches[domain.MemberID(other)] = at
		}
		for channel, membership := range encoded.Channels {
			reactivateAt, err := parseTime(membership.ReactivateAt)
			if err != nil {
				return domain.State{}, fmt.Errorf("user %s channel %s: %w", id, channel, err)
			}
			user.Channels[domain.ChannelID(channel)] = domain.ChannelMembership{
				Active:       membership.Active,
				ReactivateAt: reactivateAt,
			}
		}
		state.Users[domain.MemberID(id)] = user
	}

	for channel, encoded := range file.Tasks {
		tasks := make([]domain.ChannelTask, 0, len(encoded.MatchTasks))
		for _, task := range encoded.MatchTasks {
			tasks = append(tasks, domain.ChannelTask{
				MembersMin: task.MembersMin,
				Weekday:    task.Weekday,
				Hour:       task.Hour,
			})
		}
		state.Tasks[domain.ChannelID(channel)] = tasks
	}

	state.Normalize()
	return state, nil
}

// parseTime treats an empty string as "no timestamp"; anything else must use
// the canonical layout.
func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := domain.ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", domain.ErrSchemaValidation, err)
	}

	return parsed, nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return domain.FormatTimestamp(value)
}
