// Implementation of OminaisuusRepository
package implementation

import (
	"context"
	"errors"
	"fmt"

	"varausjarjestelma-be/internal/entity"
	"varausjarjestelma-be/internal/mapper"
	"varausjarjestelma-be/internal/model"
	"varausjarjestelma-be/internal/repository/contract"
	"varausjarjestelma-be/internal/repository/specification"

	"gorm.io/gorm"
)

type OminaisuusRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OminaisuusMapper
}

func NewOminaisuusRepository(db *gorm.DB) contract.OminaisuusRepository {
	return &OminaisuusRepositoryImpl{
		db:     db,
		mapper: mapper.NewOminaisuusMapper(),
	}
}

func (r *OminaisuusRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create inserts the record and writes the generated id back. A caller-set id is discarded.
func (r *OminaisuusRepositoryImpl) Create(ctx context.Context, ominaisuus *entity.Ominaisuus) error {
	m := r.mapper.ToModel(ominaisuus)
	m.Id = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create ominaisuus: %w", err)
	}
	*ominaisuus = *r.mapper.ToEntity(m)
	return nil
}

// Update writes nimi and kuvaus of an existing row. The id only selects the row.
func (r *OminaisuusRepositoryImpl) Update(ctx context.Context, ominaisuus *entity.Ominaisuus) error {
	result := r.db.WithContext(ctx).
		Model(&model.Ominaisuus{}).
		Where("id = ?", ominaisuus.Id).
		Updates(map[string]interface{}{
			"nimi":   ominaisuus.Nimi,
			"kuvaus": ominaisuus.Kuvaus,
		})
	if result.Error != nil {
		return fmt.Errorf("update ominaisuus %d: %w", ominaisuus.Id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update ominaisuus %d: %w", ominaisuus.Id, contract.ErrNotFound)
	}
	return nil
}

func (r *OminaisuusRepositoryImpl) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&model.Ominaisuus{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete ominaisuus %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete ominaisuus %d: %w", id, contract.ErrNotFound)
	}
	return nil
}

func (r *OminaisuusRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ominaisuus, error) {
	var m model.Ominaisuus
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *OminaisuusRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ominaisuus, error) {
	var models []*model.Ominaisuus
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *OminaisuusRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Ominaisuus{}).Count(&count).Error
	return count, err
}
