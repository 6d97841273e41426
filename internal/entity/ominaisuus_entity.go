// Domain entity for room features
package entity

// Ominaisuus is a feature a reservable space can offer (wifi, projector, ...).
// Id is assigned by the store and never changes afterwards.
type Ominaisuus struct {
	Id     int
	Nimi   string `validate:"required,max=255"`
	Kuvaus string `validate:"max=2000"`
}
