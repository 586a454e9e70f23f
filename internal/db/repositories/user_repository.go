package repositories

import (
	"context"
	"database/sql"
	"errors"

	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db}
}

// Exists reports whether an active user with the given id exists.
func (r *UserRepository) Exists(ctx context.Context, userID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowxContext(ctx, constants.UserExistsByID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// FindByID returns nil, nil when the user does not exist.
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*entities.User, error) {
	var user entities.User

	err := r.db.QueryRowxContext(ctx, constants.GetUserByID, userID).StructScan(&user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
