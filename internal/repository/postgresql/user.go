package postgresql

import (
	"context"
	"errors"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/user"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// ExistsByContact implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByContact(ctx context.Context, contact string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE contact = $1)`, contact).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, name, contact, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, contact, password_hash, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		newUser.ID,
		newUser.Name,
		newUser.Contact,
		newUser.PasswordHash,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Contact,
		&created.PasswordHash,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return user.User{}, user.ErrUserContactExists
		}
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, contact, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByContact implements user.UserRepository.
func (r *userRepositoryImpl) GetByContact(ctx context.Context, contact string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, contact, password_hash, created_at, updated_at
		FROM users
		WHERE contact = $1
	`

	return scanUser(q.QueryRow(ctx, query, contact))
}

func scanUser(row pgx.Row) (user.User, error) {
	var found user.User
	err := row.Scan(
		&found.ID,
		&found.Name,
		&found.Contact,
		&found.PasswordHash,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return found, nil
}
