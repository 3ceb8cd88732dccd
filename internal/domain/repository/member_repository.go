package repository

import (
	"context"

	"flyright-service/internal/domain/entity"
)

// MemberRepository defines the interface for membership verification and the
// digest recipient list.
type MemberRepository interface {
	CheckMembership(ctx context.Context, email string) (*entity.MembershipStatus, error)
	ListMembers(ctx context.Context) ([]*entity.Member, error)
}
