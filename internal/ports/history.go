package ports

import (
	"time"

	"github.com/bnema/matchy/internal/domain"
)

// HistorySource is the read side of match history consumed by the assignment engine.
type HistorySource interface {
	// RelevantHistoryTimestamps returns the distinct instants, ascending, at which
	// any two of the given members were placed together.
	RelevantHistoryTimestamps(members []domain.MemberID) []time.Time
	// UserMatches returns the most recent co-placement time per other member.
	UserMatches(id domain.MemberID) map[domain.MemberID]time.Time
}
