package service

import (
	"context"

	"github.com/unilodge/rental-portal/internal/model"
	"github.com/unilodge/rental-portal/internal/repository"
)

// PropertyService handles the read-only property pages.
type PropertyService struct {
	propertyRepo *repository.PropertyRepository
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(propertyRepo *repository.PropertyRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

// ListProperties retrieves all property listings with owners and manager.
func (s *PropertyService) ListProperties(ctx context.Context) ([]model.RentalProperty, error) {
	return s.propertyRepo.List(ctx)
}

// AverageRents retrieves the market overview for the home page.
func (s *PropertyService) AverageRents(ctx context.Context) (model.AverageRents, error) {
	return s.propertyRepo.AverageRents(ctx)
}
