// Mapper for Ominaisuus entity <-> model conversion
package mapper

import (
	"varausjarjestelma-be/internal/entity"
	"varausjarjestelma-be/internal/model"
)

type OminaisuusMapper struct{}

func NewOminaisuusMapper() *OminaisuusMapper {
	return &OminaisuusMapper{}
}

func (m *OminaisuusMapper) ToEntity(model *model.Ominaisuus) *entity.Ominaisuus {
	if model == nil {
		return nil
	}
	return &entity.Ominaisuus{
		Id:     model.Id,
		Nimi:   model.Nimi,
		Kuvaus: model.Kuvaus,
	}
}

func (m *OminaisuusMapper) ToModel(entity *entity.Ominaisuus) *model.Ominaisuus {
	if entity == nil {
		return nil
	}
	return &model.Ominaisuus{
		Id:     entity.Id,
		Nimi:   entity.Nimi,
		Kuvaus: entity.Kuvaus,
	}
}

func (m *OminaisuusMapper) ToEntities(models []*model.Ominaisuus) []*entity.Ominaisuus {
	entities := make([]*entity.Ominaisuus, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
