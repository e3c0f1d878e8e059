package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
	"github.com/elitebooker/elitebooker-backend/internal/dto"
	"github.com/elitebooker/elitebooker-backend/internal/repository"
)

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrSpecialistNotFound = errors.New("specialist not found")
	ErrHeroNotFound       = errors.New("hero section not set")
)

// CatalogService defines the interface for a salon's service, specialist
// and hero-section management. Every operation is scoped to the caller's
// tenant; data of other salons is simply invisible.
type CatalogService interface {
	CreateService(ctx context.Context, tenantID string, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, tenantID, id string) (*dto.ServiceResponse, error)
	ListServices(ctx context.Context, tenantID string, includeInactive bool) ([]dto.ServiceResponse, error)
	UpdateService(ctx context.Context, tenantID, id string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, tenantID, id string) error

	CreateSpecialist(ctx context.Context, tenantID string, req *dto.CreateSpecialistRequest) (*dto.SpecialistResponse, error)
	GetSpecialist(ctx context.Context, tenantID, id string) (*dto.SpecialistResponse, error)
	ListSpecialists(ctx context.Context, tenantID string, includeInactive bool) ([]dto.SpecialistResponse, error)
	UpdateSpecialist(ctx context.Context, tenantID, id string, req *dto.UpdateSpecialistRequest) (*dto.SpecialistResponse, error)
	DeleteSpecialist(ctx context.Context, tenantID, id string) error

	GetHero(ctx context.Context, tenantID string) (*dto.HeroResponse, error)
	UpsertHero(ctx context.Context, tenantID string, req *dto.UpsertHeroRequest) (*dto.HeroResponse, error)
}

// catalogService implements CatalogService
type catalogService struct {
	serviceRepo    repository.ServiceRepository
	specialistRepo repository.SpecialistRepository
	heroRepo       repository.HeroRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(serviceRepo repository.ServiceRepository, specialistRepo repository.SpecialistRepository, heroRepo repository.HeroRepository) CatalogService {
	return &catalogService{
		serviceRepo:    serviceRepo,
		specialistRepo: specialistRepo,
		heroRepo:       heroRepo,
	}
}

// CreateService creates a service owned by the caller's salon
func (s *catalogService) CreateService(ctx context.Context, tenantID string, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	now := time.Now()
	service := &domain.Service{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Variants:    toVariants(req.Variants),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetService retrieves a service owned by the caller's salon
func (s *catalogService) GetService(ctx context.Context, tenantID, id string) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}
	return toServiceResponse(service), nil
}

// ListServices retrieves the caller salon's services
func (s *catalogService) ListServices(ctx context.Context, tenantID string, includeInactive bool) ([]dto.ServiceResponse, error) {
	services, err := s.serviceRepo.List(ctx, tenantID, includeInactive)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.ServiceResponse, 0, len(services))
	for _, service := range services {
		responses = append(responses, *toServiceResponse(service))
	}
	return responses, nil
}

// UpdateService updates a service owned by the caller's salon
func (s *catalogService) UpdateService(ctx context.Context, tenantID, id string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if valid, _ := req.Validate(); !valid {
		return nil, ErrEmptyUpdate
	}

	service, err := s.serviceRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.ImageURL != nil {
		service.ImageURL = *req.ImageURL
	}
	if req.Variants != nil {
		service.Variants = toVariants(*req.Variants)
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	updated, err := s.serviceRepo.Update(ctx, tenantID, service)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrServiceNotFound
	}
	return toServiceResponse(service), nil
}

// DeleteService deletes a service owned by the caller's salon
func (s *catalogService) DeleteService(ctx context.Context, tenantID, id string) error {
	deleted, err := s.serviceRepo.Delete(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrServiceNotFound
	}
	return nil
}

// CreateSpecialist creates a specialist owned by the caller's salon
func (s *catalogService) CreateSpecialist(ctx context.Context, tenantID string, req *dto.CreateSpecialistRequest) (*dto.SpecialistResponse, error) {
	now := time.Now()
	specialist := &domain.Specialist{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		Name:       req.Name,
		Title:      req.Title,
		Bio:        req.Bio,
		PhotoURL:   req.PhotoURL,
		ServiceIDs: req.ServiceIDs,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if specialist.ServiceIDs == nil {
		specialist.ServiceIDs = []string{}
	}
	if req.IsActive != nil {
		specialist.IsActive = *req.IsActive
	}

	if err := s.specialistRepo.Create(ctx, specialist); err != nil {
		return nil, err
	}
	return toSpecialistResponse(specialist), nil
}

// GetSpecialist retrieves a specialist owned by the caller's salon
func (s *catalogService) GetSpecialist(ctx context.Context, tenantID, id string) (*dto.SpecialistResponse, error) {
	specialist, err := s.specialistRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if specialist == nil {
		return nil, ErrSpecialistNotFound
	}
	return toSpecialistResponse(specialist), nil
}

// ListSpecialists retrieves the caller salon's specialists
func (s *catalogService) ListSpecialists(ctx context.Context, tenantID string, includeInactive bool) ([]dto.SpecialistResponse, error) {
	specialists, err := s.specialistRepo.List(ctx, tenantID, includeInactive)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.SpecialistResponse, 0, len(specialists))
	for _, specialist := range specialists {
		responses = append(responses, *toSpecialistResponse(specialist))
	}
	return responses, nil
}

// UpdateSpecialist updates a specialist owned by the caller's salon
func (s *catalogService) UpdateSpecialist(ctx context.Context, tenantID, id string, req *dto.UpdateSpecialistRequest) (*dto.SpecialistResponse, error) {
	if valid, _ := req.Validate(); !valid {
		return nil, ErrEmptyUpdate
	}

	specialist, err := s.specialistRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if specialist == nil {
		return nil, ErrSpecialistNotFound
	}

	if req.Name != nil {
		specialist.Name = *req.Name
	}
	if req.Title != nil {
		specialist.Title = *req.Title
	}
	if req.Bio != nil {
		specialist.Bio = *req.Bio
	}
	if req.PhotoURL != nil {
		specialist.PhotoURL = *req.PhotoURL
	}
	if req.ServiceIDs != nil {
		specialist.ServiceIDs = *req.ServiceIDs
	}
	if req.IsActive != nil {
		specialist.IsActive = *req.IsActive
	}

	updated, err := s.specialistRepo.Update(ctx, tenantID, specialist)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrSpecialistNotFound
	}
	return toSpecialistResponse(specialist), nil
}

// DeleteSpecialist deletes a specialist owned by the caller's salon
func (s *catalogService) DeleteSpecialist(ctx context.Context, tenantID, id string) error {
	deleted, err := s.specialistRepo.Delete(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSpecialistNotFound
	}
	return nil
}

// GetHero retrieves the caller salon's hero section
func (s *catalogService) GetHero(ctx context.Context, tenantID string) (*dto.HeroResponse, error) {
	hero, err := s.heroRepo.GetByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if hero == nil {
		return nil, ErrHeroNotFound
	}
	return toHeroResponse(hero), nil
}

// UpsertHero creates or replaces the caller salon's hero section
func (s *catalogService) UpsertHero(ctx context.Context, tenantID string, req *dto.UpsertHeroRequest) (*dto.HeroResponse, error) {
	hero := &domain.HeroSection{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		Heading:    req.Heading,
		Subheading: req.Subheading,
		ImageURL:   req.ImageURL,
		CTALabel:   req.CTALabel,
		CTAURL:     req.CTAURL,
		UpdatedAt:  time.Now(),
	}

	if err := s.heroRepo.Upsert(ctx, hero); err != nil {
		return nil, err
	}
	return toHeroResponse(hero), nil
}

func toVariants(payloads []dto.ServiceVariantPayload) []domain.ServiceVariant {
	variants := make([]domain.ServiceVariant, 0, len(payloads))
	for _, p := range payloads {
		variants = append(variants, domain.ServiceVariant{
			Name:        p.Name,
			PriceCents:  p.PriceCents,
			DurationMin: p.DurationMin,
		})
	}
	return variants
}

func toVariantPayloads(variants []domain.ServiceVariant) []dto.ServiceVariantPayload {
	payloads := make([]dto.ServiceVariantPayload, 0, len(variants))
	for _, v := range variants {
		payloads = append(payloads, dto.ServiceVariantPayload{
			Name:        v.Name,
			PriceCents:  v.PriceCents,
			DurationMin: v.DurationMin,
		})
	}
	return payloads
}

// toServiceResponse converts domain.Service to dto.ServiceResponse
func toServiceResponse(service *domain.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		Category:    service.Category,
		ImageURL:    service.ImageURL,
		Variants:    toVariantPayloads(service.Variants),
		IsActive:    service.IsActive,
		CreatedAt:   service.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   service.UpdatedAt.Format(time.RFC3339),
	}
}

// toSpecialistResponse converts domain.Specialist to dto.SpecialistResponse
func toSpecialistResponse(specialist *domain.Specialist) *dto.SpecialistResponse {
	return &dto.SpecialistResponse{
		ID:         specialist.ID,
		Name:       specialist.Name,
		Title:      specialist.Title,
		Bio:        specialist.Bio,
		PhotoURL:   specialist.PhotoURL,
		ServiceIDs: specialist.ServiceIDs,
		IsActive:   specialist.IsActive,
		CreatedAt:  specialist.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  specialist.UpdatedAt.Format(time.RFC3339),
	}
}

// toHeroResponse converts domain.HeroSection to dto.HeroResponse
func toHeroResponse(hero *domain.HeroSection) *dto.HeroResponse {
	return &dto.HeroResponse{
		ID:         hero.ID,
		Heading:    hero.Heading,
		Subheading: hero.Subheading,
		ImageURL:   hero.ImageURL,
		CTALabel:   hero.CTALabel,
		CTAURL:     hero.CTAURL,
		UpdatedAt:  hero.UpdatedAt.Format(time.RFC3339),
	}
}
