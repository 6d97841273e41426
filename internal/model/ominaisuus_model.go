// GORM model for the ominaisuus table
package model

type Ominaisuus struct {
	Id     int    `gorm:"primaryKey;autoIncrement"`
	Nimi   string `gorm:"type:varchar(255);not null"`
	Kuvaus string `gorm:"type:text"`
}

func (Ominaisuus) TableName() string {
	return "ominaisuus"
}
