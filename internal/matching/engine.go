// Package matching partitions members into balanced groups while avoiding
// recent pairings and shared roles.
package matching

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/bnema/matchy/internal/domain"
	"github.com/bnema/matchy/internal/logging"
	"github.com/bnema/matchy/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Engine runs the bounded cutoff × rotation search. It holds no per-call state
// and is safe for concurrent use.
type Engine struct {
	weights     Weights
	parallelism int
	logger      ports.Logger
	clock       ports.Clock
	registerer  prometheus.Registerer
	metrics     *engineMetrics
}

var _ ports.Assigner = (*Engine)(nil)

func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		weights: DefaultWeights(),
		logger:  logging.Nop{},
		clock:   ports.SystemClock{},
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.weights.Validate(); err != nil {
		return nil, err
	}

	if e.registerer != nil {
		metrics, err := newEngineMetrics(e.registerer)
		if err != nil {
			return nil, fmt.Errorf("register engine metrics: %w", err)
		}
		e.metrics = metrics
	}

	return e, nil
}

func (e *Engine) Weights() Weights {
	return e.weights
}

// Assign splits members into max(len(members)/perGroup, 1) groups.
//
// Cutoffs are tried oldest first, each with every rotation of members; the
// first pass whose groups all reach perGroup wins. When nothing fits, members
// are dealt round-robin if allowFallback is set, otherwise
// domain.ErrAssignmentExhausted is returned. A nil history counts as empty.
func (e *Engine) Assign(ctx context.Context, members []domain.Member, perGroup int, allowFallback bool, history ports.HistorySource) ([]domain.Group, error) {
	if perGroup < 1 {
		return nil, fmt.Errorf("per group must be at least 1, got %d: %w", perGroup, domain.ErrInvalidArgument)
	}
	if err := domain.CheckMembers(members); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []domain.Group{}, nil
	}

	p := plan{
		members:   members,
		perGroup:  perGroup,
		numGroups: max(len(members)/perGroup, 1),
		weights:   e.weights,
		history:   snapshotHistory(history, members),
	}
	cutoffs := append(slices.Clone(relevantCutoffs(history, members)), e.clock.Now())

	if p.numGroups <= 1 {
		groups, ok := p.pass(p.rotation(0), recentMatches(p.history, cutoffs[0]))
		if !ok {
			groups = []domain.Group{domain.Group(members)}
		}
		e.finish(outcomeMatched, 1, groups)
		return groups, nil
	}

	attempts := 0
	for _, cutoff := range cutoffs {
		groups, tried, err := e.searchCutoff(ctx, p, cutoff)
		attempts += tried
		if err != nil {
			return nil, err
		}
		if groups != nil {
			e.finish(outcomeMatched, attempts, groups)
			return groups, nil
		}
	}

	if allowFallback {
		groups := roundRobin(members, p.numGroups)
		e.finish(outcomeFallback, attempts, groups)
		return groups, nil
	}

	e.finish(outcomeExhausted, attempts, nil)
	return nil, fmt.Errorf("%d members into groups of %d after %d attempts: %w",
		len(members), perGroup, attempts, domain.ErrAssignmentExhausted)
}

func (e *Engine) finish(outcome string, attempts int, groups []domain.Group) {
	e.metrics.observe(outcome, attempts)

	switch outcome {
	case outcomeExhausted:
		e.logger.Warn("group assignment exhausted", "attempts", attempts)
	case outcomeFallback:
		e.logger.Info("fell back to round-robin groups", "attempts", attempts, "groups", len(groups))
	default:
		e.logger.Info("matched groups", "attempts", attempts, "groups", len(groups))
	}
}

// snapshotHistory copies each member's match record once so passes never read
// from the store.
func snapshotHistory(history ports.HistorySource, members []domain.Member) map[domain.MemberID]map[domain.MemberID]time.Time {
	snapshot := make(map[domain.MemberID]map[domain.MemberID]time.Time, len(members))
	if history == nil {
		return snapshot
	}
	for _, member := range members {
		id := member.MemberID()
		if _, done := snapshot[id]; done {
			continue
		}
		snapshot[id] = history.UserMatches(id)
	}
	return snapshot
}

func relevantCutoffs(history ports.HistorySource, members []domain.Member) []time.Time {
	if history == nil {
		return nil
	}
	return history.RelevantHistoryTimestamps(domain.MemberIDs(members))
}
