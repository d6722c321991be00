// File: internal/service/user.go
package service

import (
	"context"
	"errors"
	"os"

	"userbase/internal/model"
	"userbase/internal/store"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Store is the relational persistence collaborator. *store.UserStore
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context, f store.ListFilter) ([]model.User, int, error)
	UpdateUser(ctx context.Context, id, name, email string) (*model.User, error)
	DeleteUser(ctx context.Context, id string) (*model.User, error)
}

// UserService implements the account-management operations over injected
// collaborators. It holds no mutable state and is safe for concurrent use.
type UserService struct {
	store    Store
	validate Validator
	hasher   Hasher
}

func NewUserService(st Store, v Validator, h Hasher) *UserService {
	return &UserService{store: st, validate: v, hasher: h}
}

// CreateUserParams is the untrusted creation payload. The minimum password
// length is the policy the validator owns.
type CreateUserParams struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// Create validates the payload, rejects duplicate emails, hashes the
// password, and inserts the row. The returned user never carries the hash.
func (s *UserService) Create(ctx context.Context, p CreateUserParams) (*model.User, error) {
	if verr := s.validate.Validate(p); verr != nil {
		return nil, verr
	}

	if _, err := s.store.GetUserByEmail(ctx, p.Email); err == nil {
		return nil, &DuplicateEmailError{Email: p.Email}
	} else if !errors.Is(err, store.ErrNotFound) {
		logger.Error().Err(err).Str("email", p.Email).Msg("duplicate check failed")
		return nil, &StoreError{Op: "create user", Err: err}
	}

	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		logger.Error().Err(err).Msg("password hashing failed")
		return nil, &StoreError{Op: "create user", Err: err}
	}

	created, err := s.store.CreateUser(ctx, &model.User{
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: hash,
	})
	if err != nil {
		logger.Error().Err(err).Str("email", p.Email).Msg("insert failed")
		return nil, &StoreError{Op: "create user", Err: err}
	}

	out := created.Sanitized()
	return &out, nil
}

// ListUsersParams carries the optional exact-match filters and the page
// window. A nil filter is omitted from the query, not compared to NULL.
type ListUsersParams struct {
	Name  *string
	Email *string
	Page  int
	Limit int
}

// UsersPage is one page of sanitized users plus pagination metadata.
type UsersPage struct {
	Items        []model.User
	TotalItems   int
	TotalPages   int
	CurrentPage  int
	ItemsPerPage int
}

// List applies the present filters conjunctively and returns the requested
// page. Pages beyond the last come back empty with TotalItems still correct.
func (s *UserService) List(ctx context.Context, p ListUsersParams) (*UsersPage, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = 10
	}

	rows, total, err := s.store.ListUsers(ctx, store.ListFilter{
		Name:   p.Name,
		Email:  p.Email,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		logger.Error().Err(err).Msg("list query failed")
		return nil, &StoreError{Op: "list users", Err: err}
	}

	items := make([]model.User, 0, len(rows))
	for _, u := range rows {
		items = append(items, u.Sanitized())
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &UsersPage{
		Items:        items,
		TotalItems:   total,
		TotalPages:   totalPages,
		CurrentPage:  page,
		ItemsPerPage: limit,
	}, nil
}

// GetByID fetches a single user, sanitized.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		logger.Error().Err(err).Str("id", id).Msg("get query failed")
		return nil, &StoreError{Op: "get user", Err: err}
	}
	out := u.Sanitized()
	return &out, nil
}

// UpdateUserParams replaces name and email wholesale.
type UpdateUserParams struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

// Update verifies the row exists, then replaces name and email. Email
// uniqueness is not re-checked here; a clash is caught only by the store's
// unique constraint. The row vanishing between check and update still
// surfaces as not-found: the update's own zero-row outcome is authoritative.
func (s *UserService) Update(ctx context.Context, id string, p UpdateUserParams) (*model.User, error) {
	if verr := s.validate.Validate(p); verr != nil {
		return nil, verr
	}

	if _, err := s.store.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		logger.Error().Err(err).Str("id", id).Msg("existence check failed")
		return nil, &StoreError{Op: "update user", Err: err}
	}

	updated, err := s.store.UpdateUser(ctx, id, p.Name, p.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		logger.Error().Err(err).Str("id", id).Msg("update failed")
		return nil, &StoreError{Op: "update user", Err: err}
	}
	out := updated.Sanitized()
	return &out, nil
}

// Delete verifies the row exists, removes it, and returns the deleted row
// as the store handed it back, password hash included. Callers own not
// leaking it further.
func (s *UserService) Delete(ctx context.Context, id string) (*model.User, error) {
	if _, err := s.store.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		logger.Error().Err(err).Str("id", id).Msg("existence check failed")
		return nil, &StoreError{Op: "delete user", Err: err}
	}

	deleted, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		logger.Error().Err(err).Str("id", id).Msg("delete failed")
		return nil, &StoreError{Op: "delete user", Err: err}
	}
	return deleted, nil
}
