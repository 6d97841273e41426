// Repository interface for Ominaisuus
package contract

import (
	"context"
	"errors"

	"varausjarjestelma-be/internal/entity"
	"varausjarjestelma-be/internal/repository/specification"
)

// ErrNotFound is returned by Update and Delete when no row matches the record's id.
var ErrNotFound = errors.New("ominaisuus not found")

type OminaisuusRepository interface {
	Create(ctx context.Context, ominaisuus *entity.Ominaisuus) error
	Update(ctx context.Context, ominaisuus *entity.Ominaisuus) error
	Delete(ctx context.Context, id int) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ominaisuus, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ominaisuus, error)
	Count(ctx context.Context) (int64, error)
}
