package toml

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/bnema/matchy/internal/domain"
)

// RecordMatches stamps every pair within each group with at, in both
// directions. Replaying the same call leaves the document unchanged.
func (s *Store) RecordMatches(ctx context.Context, groups []domain.Group, at time.Time) error {
	for i, group := range groups {
		if err := domain.CheckMembers(group); err != nil {
			return fmt.Errorf("group %d: %w", i, err)
		}
	}
	if at.IsZero() {
		return fmt.Errorf("match time is zero: %w", domain.ErrInvalidArgument)
	}
	at = domain.NormalizeTime(at)

	return s.update(ctx, func(state *domain.State) error {
		for _, group := range groups {
			for _, member := range group {
				id := member.MemberID()
				user := state.User(id)
				for _, other := range group {
					if other.MemberID() == id {
						continue
					}
					user.Matches[other.MemberID()] = at
				}
			}
		}
		return nil
	})
}

// UserMatches returns a copy of id's match record.
func (s *Store) UserMatches(id domain.MemberID) map[domain.MemberID]time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.state.Users[id]
	if !ok {
		return map[domain.MemberID]time.Time{}
	}

	return maps.Clone(user.Matches)
}

// RelevantHistoryTimestamps returns the distinct instants, ascending, at which
// two of the given members were matched with each other.
func (s *Store) RelevantHistoryTimestamps(members []domain.MemberID) []time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inSet := make(map[domain.MemberID]struct{}, len(members))
	for _, id := range members {
		inSet[id] = struct{}{}
	}

	seen := map[time.Time]struct{}{}
	for id := range inSet {
		user, ok := s.state.Users[id]
		if !ok {
			continue
		}
		for other, at := range user.Matches {
			if _, ok := inSet[other]; ok {
				seen[at] = struct{}{}
			}
		}
	}

	times := slices.Collect(maps.Keys(seen))
	slices.SortFunc(times, func(a, b time.Time) int { return a.Compare(b) })
	return times
}
