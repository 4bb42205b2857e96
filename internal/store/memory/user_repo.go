package memory

import (
	"context"

	"github.com/medcare-africa/medcare-api/internal/domain"
	"github.com/medcare-africa/medcare-api/internal/domain/user"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) GetByID(_ context.Context, id int) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *userRepo) List(_ context.Context, role domain.Role) ([]*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*user.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if role != "" && u.Role != role {
			continue
		}
		cp := *u
		result = append(result, &cp)
	}
	return result, nil
}

func (r *userRepo) Update(_ context.Context, id int, cmd *user.UpdateUserCommand) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.ID == id {
			u.Apply(cmd)
			// The id is pinned to the path parameter; Apply cannot change it.
			u.ID = id
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}
