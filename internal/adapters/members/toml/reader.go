// Package toml reads caller-supplied member lists from TOML files.
package toml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/matchy/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

type membersFileSchema struct {
	Members []memberSchema `toml:"members"`
}

type memberSchema struct {
	ID    string   `toml:"id"`
	Roles []string `toml:"roles,omitempty"`
}

// Load reads the members file at path.
func Load(path string) ([]domain.Member, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("members file %s not found: %w", path, domain.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("read members file: %w", err)
	}

	return Decode(bytes.NewReader(data))
}

// Decode parses a members document. Member ids must be present and unique.
func Decode(r io.Reader) ([]domain.Member, error) {
	var file membersFileSchema
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode members file: %w: %w", domain.ErrInvalidArgument, err)
	}

	seen := make(map[domain.MemberID]struct{}, len(file.Members))
	members := make([]domain.Member, 0, len(file.Members))
	for i, encoded := range file.Members {
		id := domain.MemberID(encoded.ID)
		if id == "" {
			return nil, fmt.Errorf("member %d has no id: %w", i, domain.ErrInvalidArgument)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("member %s listed twice: %w", id, domain.ErrInvalidArgument)
		}
		seen[id] = struct{}{}

		participant := domain.Participant{ID: id}
		for _, role := range encoded.Roles {
			participant.Roles = append(participant.Roles, domain.RoleID(role))
		}
		members = append(members, participant)
	}

	return members, nil
}

// Write stores members in the format Load reads.
func Write(w io.Writer, members []domain.Member) error {
	if err := domain.CheckMembers(members); err != nil {
		return err
	}

	file := membersFileSchema{Members: make([]memberSchema, 0, len(members))}
	for _, member := range members {
		encoded := memberSchema{ID: string(member.MemberID())}
		for _, role := range member.RoleIDs() {
			encoded.Roles = append(encoded.Roles, string(role))
		}
		file.Members = append(file.Members, encoded)
	}

	if err := toml.NewEncoder(w).Encode(file); err != nil {
		return fmt.Errorf("encode members file: %w", err)
	}
	return nil
}
