package domain

import "fmt"

type MemberID string
type RoleID string

// Member is the caller-owned view of a participant. Only the id and role ids are
// ever read; display concerns stay with the caller.
type Member interface {
	MemberID() MemberID
	RoleIDs() []RoleID
}

// Participant is a plain Member implementation.
type Participant struct {
	ID    MemberID
	Roles []RoleID
}

var _ Member = Participant{}

func (p Participant) MemberID() MemberID { return p.ID }

func (p Participant) RoleIDs() []RoleID { return p.Roles }

// Group is one output partition of an assignment call. Groups are never persisted.
type Group []Member

func (g Group) IDs() []MemberID {
	ids := make([]MemberID, 0, len(g))
	for _, member := range g {
		ids = append(ids, member.MemberID())
	}
	return ids
}

// CheckMembers rejects nil members and members with an empty id.
func CheckMembers(members []Member) error {
	for i, member := range members {
		if member == nil {
			return fmt.Errorf("member %d is nil: %w", i, ErrInvalidArgument)
		}
		if member.MemberID() == "" {
			return fmt.Errorf("member %d has an empty id: %w", i, ErrInvalidArgument)
		}
	}
	return nil
}

func MemberIDs(members []Member) []MemberID {
	return Group(members).IDs()
}
