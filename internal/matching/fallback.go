package matching

import "github.com/bnema/matchy/internal/domain"

// roundRobin deals members, in their given order, into numGroups groups.
func roundRobin(members []domain.Member, numGroups int) []domain.Group {
	groups := make([]domain.Group, numGroups)
	for i, member := range members {
		groups[i%numGroups] = append(groups[i%numGroups], member)
	}
	return groups
}
