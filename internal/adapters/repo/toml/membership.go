package toml

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/bnema/matchy/internal/domain"
)

func (s *Store) SetScope(ctx context.Context, id domain.MemberID, scope domain.Scope, enabled bool) error {
	if id == "" || scope == "" {
		return fmt.Errorf("user id and scope are required: %w", domain.ErrInvalidArgument)
	}

	return s.update(ctx, func(state *domain.State) error {
		user := state.User(id)
		has := user.HasScope(scope)
		switch {
		case enabled && !has:
			user.Scopes = append(user.Scopes, scope)
		case !enabled && has:
			user.Scopes = slices.DeleteFunc(user.Scopes, func(existing domain.Scope) bool { return existing == scope })
		default:
			return errUnchanged
		}
		state.Users[id] = user
		return nil
	})
}

func (s *Store) HasScope(id domain.MemberID, scope domain.Scope) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Users[id].HasScope(scope)
}

// SetChannelMembership sets whether id takes part in channel and drops any
// pending reactivation.
func (s *Store) SetChannelMembership(ctx context.Context, id domain.MemberID, channel domain.ChannelID, active bool) error {
	if id == "" || channel == "" {
		return fmt.Errorf("user id and channel id are required: %w", domain.ErrInvalidArgument)
	}

	return s.update(ctx, func(state *domain.State) error {
		state.User(id).Channels[channel] = domain.ChannelMembership{Active: active}
		return nil
	})
}

// PauseInChannel deactivates id in channel until the given deadline.
func (s *Store) PauseInChannel(ctx context.Context, id domain.MemberID, channel domain.ChannelID, until time.Time) error {
	if id == "" || channel == "" {
		return fmt.Errorf("user id and channel id are required: %w", domain.ErrInvalidArgument)
	}
	if until.IsZero() {
		return fmt.Errorf("reactivation deadline is zero: %w", domain.ErrInvalidArgument)
	}

	return s.update(ctx, func(state *domain.State) error {
		state.User(id).Channels[channel] = domain.ChannelMembership{
			Active:       false,
			ReactivateAt: domain.NormalizeTime(until),
		}
		return nil
	})
}

// ReactivateDue reactivates every user in channel whose deadline lies before
// now and returns their ids in order.
func (s *Store) ReactivateDue(ctx context.Context, channel domain.ChannelID, now time.Time) ([]domain.MemberID, error) {
	var reactivated []domain.MemberID

	err := s.update(ctx, func(state *domain.State) error {
		for _, id := range slices.Sorted(maps.Keys(state.Users)) {
			membership, ok := state.Users[id].Channels[channel]
			if !ok || !membership.Paused() || !now.After(membership.ReactivateAt) {
				continue
			}
			state.Users[id].Channels[channel] = domain.ChannelMembership{Active: true}
			reactivated = append(reactivated, id)
		}
		if len(reactivated) == 0 {
			return errUnchanged
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reactivated, nil
}

func (s *Store) IsActiveInChannel(id domain.MemberID, channel domain.ChannelID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Users[id].Channels[channel].Active
}

// ReactivationDeadline reports when a paused membership becomes active again.
func (s *Store) ReactivationDeadline(id domain.MemberID, channel domain.ChannelID) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	membership := s.state.Users[id].Channels[channel]
	return membership.ReactivateAt, membership.Paused()
}
