package repository

import (
	"errors"
	"order_manager/internal/models"

	"gorm.io/gorm"
)

// AreaRow is a flattened area hierarchy row returned by the search queries.
type AreaRow struct {
	VillageID     uint   `json:"village_id,omitempty"`
	Village       string `json:"village,omitempty"`
	SubdistrictID uint   `json:"subdistrict_id"`
	Subdistrict   string `json:"subdistrict_name"`
	City          string `json:"city_name"`
	Province      string `json:"province"`
}

type AreaRepository interface {
	SearchVillages(keyword string) ([]AreaRow, error)
	SearchSubdistricts(keyword string) ([]AreaRow, error)
	GetSubdistrict(id uint) (*AreaRow, error)
}

type areaRepository struct {
	db *gorm.DB
}

func NewAreaRepository(db *gorm.DB) AreaRepository {
	return &areaRepository{db: db}
}

func (r *areaRepository) villageQuery() *gorm.DB {
	return r.db.Model(&models.Village{}).
		Joins("JOIN subdistricts ON subdistricts.id = villages.subdistrict_id").
		Joins("JOIN cities ON cities.id = subdistricts.city_id").
		Joins("JOIN provinces ON provinces.id = cities.province_id").
		Select(`villages.id AS village_id, villages.name AS village,
			subdistricts.id AS subdistrict_id, subdistricts.name AS subdistrict,
			cities.name AS city, provinces.name AS province`)
}

func (r *areaRepository) subdistrictQuery() *gorm.DB {
	return r.db.Model(&models.Subdistrict{}).
		Joins("JOIN cities ON cities.id = subdistricts.city_id").
		Joins("JOIN provinces ON provinces.id = cities.province_id").
		Select(`subdistricts.id AS subdistrict_id, subdistricts.name AS subdistrict,
			cities.name AS city, provinces.name AS province`)
}

func (r *areaRepository) SearchVillages(keyword string) ([]AreaRow, error) {
	var rows []AreaRow
	err := r.villageQuery().
		Where("subdistricts.name = ? OR cities.name = ?", keyword, keyword).
		Scan(&rows).Error
	return rows, err
}

func (r *areaRepository) SearchSubdistricts(keyword string) ([]AreaRow, error) {
	pattern := "%" + keyword + "%"
	var rows []AreaRow
	err := r.subdistrictQuery().
		Where("subdistricts.name ILIKE ? OR cities.name ILIKE ?", pattern, pattern).
		Scan(&rows).Error
	return rows, err
}

func (r *areaRepository) GetSubdistrict(id uint) (*AreaRow, error) {
	var row AreaRow
	err := r.subdistrictQuery().Where("subdistricts.id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
