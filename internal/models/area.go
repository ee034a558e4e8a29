package models

type Province struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null;index"`
}

type City struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	ProvinceID uint     `json:"province_id" gorm:"not null;index"`
	Name       string   `json:"name" gorm:"not null;index"`
	Province   Province `json:"province"`
}

type Subdistrict struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	CityID uint   `json:"city_id" gorm:"not null;index"`
	Name   string `json:"name" gorm:"not null;index"`
	City   City   `json:"city"`
}

type Village struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	SubdistrictID uint        `json:"subdistrict_id" gorm:"not null;index"`
	Name          string      `json:"name" gorm:"not null;index"`
	Subdistrict   Subdistrict `json:"subdistrict"`
}
