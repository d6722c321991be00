package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"userbase/internal/database"
	"userbase/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound reports that no row matched the given identifier or email.
var ErrNotFound = errors.New("user not found")

const userColumns = `id, name, email, password_hash, created_at, updated_at`

// UserStore persists users in Postgres through the database.DB interface.
type UserStore struct {
	db database.DB
}

func New(db database.DB) *UserStore {
	return &UserStore{db: db}
}

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser inserts a row and fills in the store-assigned id and timestamps.
func (s *UserStore) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// GetUserByEmail matches the email exactly, as stored.
func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// ListFilter carries the optional equality filters and the page window.
// A nil filter field is omitted from the query entirely.
type ListFilter struct {
	Name   *string
	Email  *string
	Limit  int
	Offset int
}

// whereClause folds the present filters into a conjunctive WHERE clause.
func (f ListFilter) whereClause() (string, []any) {
	var conds []string
	var args []any
	if f.Name != nil {
		args = append(args, *f.Name)
		conds = append(conds, fmt.Sprintf("name = $%d", len(args)))
	}
	if f.Email != nil {
		args = append(args, *f.Email)
		conds = append(conds, fmt.Sprintf("email = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListUsers returns one page of matching rows plus the pre-pagination total.
// The total rides along on a window count; when the page comes back empty the
// window is unobservable, so a COUNT with the same predicates supplies it.
func (s *UserStore) ListUsers(ctx context.Context, f ListFilter) ([]model.User, int, error) {
	where, args := f.whereClause()
	query := fmt.Sprintf(
		`SELECT `+userColumns+`, COUNT(*) OVER() AS total
		 FROM users%s
		 ORDER BY created_at, id
		 LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	rows, err := s.db.Query(ctx, query, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	var total int
	for rows.Next() {
		var u model.User
		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.PasswordHash,
			&u.CreatedAt,
			&u.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}

	if len(users) == 0 {
		row := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM users"+where, args...)
		if err := row.Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("ListUsers: count: %w", err)
		}
	}
	return users, total, nil
}

// UpdateUser replaces name and email; updated_at is refreshed by the store.
// A vanished row surfaces as ErrNotFound, not as a zero-value user.
func (s *UserStore) UpdateUser(ctx context.Context, id, name, email string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE users SET name = $1, email = $2
		 WHERE id = $3
		 RETURNING `+userColumns,
		name,
		email,
		id,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("UpdateUser: %w", err)
	}
	return u, nil
}

// DeleteUser removes the row and returns it in full, password hash included.
func (s *UserStore) DeleteUser(ctx context.Context, id string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`DELETE FROM users WHERE id = $1
		 RETURNING `+userColumns,
		id,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("DeleteUser: %w", err)
	}
	return u, nil
}
