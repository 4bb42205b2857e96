package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/medcare-africa/medcare-api/internal/domain"
	"github.com/medcare-africa/medcare-api/internal/domain/user"
)

type UserService struct {
	repo     user.Repository
	auditSvc *AuditService
	log      *zap.Logger
}

func NewUserService(repo user.Repository, auditSvc *AuditService, log *zap.Logger) *UserService {
	return &UserService{repo: repo, auditSvc: auditSvc, log: log}
}

// List returns users filtered by exact role match, each redacted. Seed data
// never sets a password, but the redaction holds for any record that ever
// carries one.
func (s *UserService) List(ctx context.Context, role domain.Role) ([]*user.User, error) {
	users, err := s.repo.List(ctx, role)
	if err != nil {
		return nil, err
	}
	redacted := make([]*user.User, len(users))
	for i, u := range users {
		redacted[i] = u.Redacted()
	}
	return redacted, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Redacted(), nil
}

// Update merge-applies the supplied fields; the record's id stays pinned to
// the path parameter regardless of the body.
func (s *UserService) Update(ctx context.Context, id int, cmd *user.UpdateUserCommand) (*user.User, error) {
	u, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		return nil, err
	}

	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "update",
		ResourceType: "user",
		ResourceID:   strconv.Itoa(id),
	})

	return u.Redacted(), nil
}
