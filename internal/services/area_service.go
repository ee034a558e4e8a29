package services

import "order_manager/internal/repository"

type AreaService interface {
	GetCustomArea(keyword string) ([]repository.AreaRow, error)
	GetCustomSubdistrict(keyword string) ([]repository.AreaRow, error)
	GetBySubdistrict(id uint) (*repository.AreaRow, error)
}

type areaService struct {
	areaRepo repository.AreaRepository
}

func NewAreaService(areaRepo repository.AreaRepository) AreaService {
	return &areaService{areaRepo: areaRepo}
}

// GetCustomArea returns villages whose subdistrict or city matches the
// keyword exactly.
func (s *areaService) GetCustomArea(keyword string) ([]repository.AreaRow, error) {
	return s.areaRepo.SearchVillages(keyword)
}

// GetCustomSubdistrict returns subdistricts whose own or city name contains
// the keyword.
func (s *areaService) GetCustomSubdistrict(keyword string) ([]repository.AreaRow, error) {
	return s.areaRepo.SearchSubdistricts(keyword)
}

func (s *areaService) GetBySubdistrict(id uint) (*repository.AreaRow, error) {
	return s.areaRepo.GetSubdistrict(id)
}
