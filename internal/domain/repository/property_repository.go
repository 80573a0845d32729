package repository

import (
	"context"

	"github.com/devsenior/property-service/internal/domain/entity"
)

// PropertyRepository defines the interface for property persistence.
// Create assigns the ID on p; Update replaces every other column of an
// existing row and reports ErrNotFound when the id does not exist.
type PropertyRepository interface {
	Create(ctx context.Context, p *entity.Property) error
	GetByID(ctx context.Context, id int64) (*entity.Property, error)
	GetAll(ctx context.Context) ([]entity.Property, error)
	GetByCity(ctx context.Context, city string) ([]entity.Property, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, p *entity.Property) error
	Delete(ctx context.Context, id int64) error
}
