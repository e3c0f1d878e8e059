package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
	"github.com/elitebooker/elitebooker-backend/internal/dto"
	"github.com/elitebooker/elitebooker-backend/internal/repository"
	"github.com/elitebooker/elitebooker-backend/pkg/logger"
	redislib "github.com/elitebooker/elitebooker-backend/pkg/redis"
)

// publicSiteCacheTTL bounds staleness of the public page; admin edits show
// up within this window without any invalidation plumbing.
const publicSiteCacheTTL = 60 * time.Second

// PublicService defines the interface for the unauthenticated salon site.
// Reads go through a short-lived Redis cache since the public page is by
// far the hottest path.
type PublicService interface {
	// ResolveSalonID maps a public slug to the salon's tenant ID
	ResolveSalonID(ctx context.Context, slug string) (string, error)
	// GetSite returns everything the public salon page needs in one call
	GetSite(ctx context.Context, slug string) (*dto.PublicSiteResponse, error)
}

// publicService implements PublicService
type publicService struct {
	salonRepo      repository.SalonRepository
	serviceRepo    repository.ServiceRepository
	specialistRepo repository.SpecialistRepository
	heroRepo       repository.HeroRepository
	consentRepo    repository.ConsentRepository
	cache          *redislib.Client
}

// NewPublicService creates a new PublicService
func NewPublicService(
	salonRepo repository.SalonRepository,
	serviceRepo repository.ServiceRepository,
	specialistRepo repository.SpecialistRepository,
	heroRepo repository.HeroRepository,
	consentRepo repository.ConsentRepository,
	cache *redislib.Client,
) PublicService {
	return &publicService{
		salonRepo:      salonRepo,
		serviceRepo:    serviceRepo,
		specialistRepo: specialistRepo,
		heroRepo:       heroRepo,
		consentRepo:    consentRepo,
		cache:          cache,
	}
}

// ResolveSalonID maps a public slug to the salon's tenant ID. Inactive and
// soft-deleted salons resolve to nothing.
func (s *publicService) ResolveSalonID(ctx context.Context, slug string) (string, error) {
	salon, err := s.salonRepo.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	if salon == nil || !salon.IsActive {
		return "", ErrSalonNotFound
	}
	return salon.ID, nil
}

// GetSite returns everything the public salon page needs in one call
func (s *publicService) GetSite(ctx context.Context, slug string) (*dto.PublicSiteResponse, error) {
	cacheKey := "public_site:" + slug

	if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
		var site dto.PublicSiteResponse
		if err := json.Unmarshal([]byte(cached), &site); err == nil {
			return &site, nil
		}
	} else if err != redis.Nil {
		// Cache trouble degrades to database reads, it never fails the page.
		logger.Warn("public site cache read failed", zap.String("slug", slug), zap.Error(err))
	}

	salon, err := s.salonRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if salon == nil || !salon.IsActive {
		return nil, ErrSalonNotFound
	}

	services, err := s.serviceRepo.List(ctx, salon.ID, false)
	if err != nil {
		return nil, err
	}
	specialists, err := s.specialistRepo.List(ctx, salon.ID, false)
	if err != nil {
		return nil, err
	}
	hero, err := s.heroRepo.GetByTenant(ctx, salon.ID)
	if err != nil {
		return nil, err
	}
	published := domain.ConsentStatusPublished
	consents, _, err := s.consentRepo.List(ctx, salon.ID, repository.ConsentFilter{
		Status:   &published,
		Page:     1,
		PageSize: 100,
	})
	if err != nil {
		return nil, err
	}

	site := &dto.PublicSiteResponse{
		Salon: dto.PublicSalonResponse{
			ID:      salon.ID,
			Name:    salon.Name,
			Slug:    salon.Slug,
			Phone:   salon.Phone,
			Address: salon.Address,
			LogoURL: salon.LogoURL,
		},
		Services:         make([]dto.ServiceResponse, 0, len(services)),
		Specialists:      make([]dto.SpecialistResponse, 0, len(specialists)),
		ConsentTemplates: make([]dto.ConsentTemplateResponse, 0, len(consents)),
	}
	if hero != nil {
		site.Hero = toHeroResponse(hero)
	}
	for _, service := range services {
		site.Services = append(site.Services, *toServiceResponse(service))
	}
	for _, specialist := range specialists {
		site.Specialists = append(site.Specialists, *toSpecialistResponse(specialist))
	}
	for _, consent := range consents {
		site.ConsentTemplates = append(site.ConsentTemplates, *toConsentTemplateResponse(consent))
	}

	if payload, err := json.Marshal(site); err == nil {
		if err := s.cache.Set(ctx, cacheKey, payload, publicSiteCacheTTL).Err(); err != nil {
			logger.Warn("public site cache write failed", zap.String("slug", slug), zap.Error(err))
		}
	}

	return site, nil
}
