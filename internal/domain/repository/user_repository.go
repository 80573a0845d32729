package repository

import (
	"context"

	"github.com/devsenior/property-service/internal/domain/entity"
)

// UserRepository defines the interface for user persistence.
// Email is unique; GetByEmail and ExistsByEmail match exactly.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
