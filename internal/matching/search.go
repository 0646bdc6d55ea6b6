package matching

import (
	"context"
	"time"

	"github.com/bnema/matchy/internal/domain"
	"golang.org/x/sync/errgroup"
)

// plan is the immutable input shared by every pass of one Assign call.
type plan struct {
	members   []domain.Member
	perGroup  int
	numGroups int
	weights   Weights
	history   map[domain.MemberID]map[domain.MemberID]time.Time
}

// rotation returns members shifted left by i.
func (p plan) rotation(i int) []domain.Member {
	rotated := make([]domain.Member, 0, len(p.members))
	rotated = append(rotated, p.members[i:]...)
	return append(rotated, p.members[:i]...)
}

// pass greedily places members, last first, into numGroups bins. It reports
// false when some member fits no bin.
func (p plan) pass(order []domain.Member, recent map[domain.MemberID]map[domain.MemberID]struct{}) ([]domain.Group, bool) {
	bins := make([]*bin, p.numGroups)
	for i := range bins {
		bins[i] = newBin()
	}

	for left := len(order); left > 0; left-- {
		candidate := order[left-1]
		matches := recent[candidate.MemberID()]

		best, bestScore := -1, 0
		for i, b := range bins {
			score := p.weights.score(candidate, matches, b, p.perGroup)
			if score <= p.weights.Upper && (best < 0 || score < bestScore) {
				best, bestScore = i, score
			}
			if score == 0 {
				break
			}
		}
		if best < 0 {
			return nil, false
		}
		bins[best].add(candidate)
	}

	groups := make([]domain.Group, len(bins))
	for i, b := range bins {
		groups[i] = domain.Group(b.members)
	}
	return groups, true
}

func (p plan) accepted(groups []domain.Group) bool {
	for _, group := range groups {
		if len(group) < p.perGroup {
			return false
		}
	}
	return true
}

// searchCutoff tries every rotation for one cutoff and returns the accepted
// result with the lowest rotation index, plus the passes that index implies.
func (e *Engine) searchCutoff(ctx context.Context, p plan, cutoff time.Time) ([]domain.Group, int, error) {
	recent := recentMatches(p.history, cutoff)
	n := len(p.members)

	if e.parallelism <= 1 {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return nil, i, err
			}
			if groups, ok := p.pass(p.rotation(i), recent); ok && p.accepted(groups) {
				return groups, i + 1, nil
			}
		}
		return nil, n, nil
	}

	results := make([][]domain.Group, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if groups, ok := p.pass(p.rotation(i), recent); ok && p.accepted(groups) {
				results[i] = groups
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	for i, groups := range results {
		if groups != nil {
			return groups, i + 1, nil
		}
	}
	return nil, n, nil
}
