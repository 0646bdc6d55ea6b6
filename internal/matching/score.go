package matching

import (
	"time"

	"github.com/bnema/matchy/internal/domain"
)

// bin is one group under construction during a pass.
type bin struct {
	members []domain.Member
	ids     map[domain.MemberID]struct{}
	roles   map[domain.RoleID]struct{}
}

func newBin() *bin {
	return &bin{
		ids:   map[domain.MemberID]struct{}{},
		roles: map[domain.RoleID]struct{}{},
	}
}

func (b *bin) add(member domain.Member) {
	b.members = append(b.members, member)
	b.ids[member.MemberID()] = struct{}{}
	for _, role := range member.RoleIDs() {
		b.roles[role] = struct{}{}
	}
}

// score rates placing candidate into b. An empty bin always scores 0.
func (w Weights) score(candidate domain.Member, recent map[domain.MemberID]struct{}, b *bin, perGroup int) int {
	if len(b.members) == 0 {
		return 0
	}

	repeatMatches := 0
	for _, member := range b.members {
		if _, ok := recent[member.MemberID()]; ok {
			repeatMatches++
		}
	}

	repeatRoles := 0
	counted := map[domain.RoleID]struct{}{}
	for _, role := range candidate.RoleIDs() {
		if _, dup := counted[role]; dup {
			continue
		}
		counted[role] = struct{}{}
		if _, ok := b.roles[role]; ok {
			repeatRoles++
		}
	}

	overflow := max(0, len(b.members)-perGroup+1)

	return repeatMatches*w.Match + repeatRoles*w.Role + overflow*w.Extra
}

// recentMatches keeps, per member, the partners matched at or after cutoff.
func recentMatches(history map[domain.MemberID]map[domain.MemberID]time.Time, cutoff time.Time) map[domain.MemberID]map[domain.MemberID]struct{} {
	recent := make(map[domain.MemberID]map[domain.MemberID]struct{}, len(history))
	for id, matches := range history {
		set := map[domain.MemberID]struct{}{}
		for other, at := range matches {
			if !at.Before(cutoff) {
				set[other] = struct{}{}
			}
		}
		recent[id] = set
	}
	return recent
}
