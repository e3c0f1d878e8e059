package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
	"github.com/elitebooker/elitebooker-backend/internal/dto"
	"github.com/elitebooker/elitebooker-backend/internal/repository"
)

var (
	ErrSalonAlreadyExists = errors.New("salon with this slug already exists")
	ErrEmailAlreadyExists = errors.New("account with this email already exists")
	ErrSalonNotFound      = errors.New("salon not found")
	ErrInvalidSlug        = errors.New("invalid slug format")
	ErrEmptyUpdate        = errors.New("at least one field must be provided for update")
)

// SalonService defines the interface for salon provisioning and management
type SalonService interface {
	// Signup creates a salon with its first tenant_admin account and logs it in
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	// Get retrieves the caller's salon
	Get(ctx context.Context, tenantID string) (*dto.SalonResponse, error)
	// Update updates the caller's salon
	Update(ctx context.Context, tenantID string, req *dto.UpdateSalonRequest) (*dto.SalonResponse, error)
	// List retrieves salons across the platform with pagination and filters
	List(ctx context.Context, query *dto.ListSalonsQuery) (*dto.ListSalonsResponse, error)
	// Deactivate soft deletes a salon platform-wide
	Deactivate(ctx context.Context, id string) error
}

// salonService implements SalonService
type salonService struct {
	provisioner repository.TenantProvisioner
	salonRepo   repository.SalonRepository
	adminRepo   repository.AdminRepository
	auth        AuthService
}

// NewSalonService creates a new SalonService
func NewSalonService(provisioner repository.TenantProvisioner, salonRepo repository.SalonRepository, adminRepo repository.AdminRepository, auth AuthService) SalonService {
	return &salonService{
		provisioner: provisioner,
		salonRepo:   salonRepo,
		adminRepo:   adminRepo,
		auth:        auth,
	}
}

// Signup creates a salon with its first tenant_admin account and logs it in.
// Both rows commit together; a half-provisioned salon never exists.
func (s *salonService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	if valid, _ := req.ValidateSlug(); !valid {
		return nil, ErrInvalidSlug
	}

	exists, err := s.salonRepo.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSalonAlreadyExists
	}

	email := strings.ToLower(strings.TrimSpace(req.AdminEmail))
	emailTaken, err := s.adminRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	salon := &domain.Salon{
		ID:        uuid.New().String(),
		Name:      req.SalonName,
		Slug:      req.Slug,
		Phone:     req.Phone,
		Address:   req.Address,
		Settings:  req.Settings,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if salon.Settings == nil {
		salon.Settings = make(map[string]interface{})
	}

	account := &domain.AdminAccount{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.AdminName,
		Role:         domain.RoleTenantAdmin,
		TenantID:     salon.ID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.provisioner.ProvisionTenant(ctx, salon, account); err != nil {
		return nil, err
	}

	session, err := s.auth.IssueSession(account)
	if err != nil {
		return nil, err
	}

	return &dto.SignupResponse{
		Salon:   *toSalonResponse(salon),
		Session: *session,
	}, nil
}

// Get retrieves the caller's salon
func (s *salonService) Get(ctx context.Context, tenantID string) (*dto.SalonResponse, error) {
	salon, err := s.salonRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if salon == nil {
		return nil, ErrSalonNotFound
	}
	return toSalonResponse(salon), nil
}

// Update updates the caller's salon
func (s *salonService) Update(ctx context.Context, tenantID string, req *dto.UpdateSalonRequest) (*dto.SalonResponse, error) {
	if valid, _ := req.Validate(); !valid {
		return nil, ErrEmptyUpdate
	}

	salon, err := s.salonRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if salon == nil {
		return nil, ErrSalonNotFound
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.LogoURL != nil {
		salon.LogoURL = *req.LogoURL
	}
	if req.Settings != nil {
		salon.Settings = *req.Settings
	}
	if req.IsActive != nil {
		salon.IsActive = *req.IsActive
	}

	if err := s.salonRepo.Update(ctx, salon); err != nil {
		return nil, err
	}

	return toSalonResponse(salon), nil
}

// List retrieves salons across the platform with pagination and filters
func (s *salonService) List(ctx context.Context, query *dto.ListSalonsQuery) (*dto.ListSalonsResponse, error) {
	query.SetDefaults()

	salons, totalCount, err := s.salonRepo.List(ctx, query.Page, query.Limit, query.IsActive, query.Search)
	if err != nil {
		return nil, err
	}

	salonResponses := make([]dto.SalonResponse, 0, len(salons))
	for _, salon := range salons {
		salonResponses = append(salonResponses, *toSalonResponse(salon))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListSalonsResponse{
		Salons:     salonResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// Deactivate soft deletes a salon platform-wide
func (s *salonService) Deactivate(ctx context.Context, id string) error {
	salon, err := s.salonRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if salon == nil {
		return ErrSalonNotFound
	}
	return s.salonRepo.SoftDelete(ctx, id)
}

// toSalonResponse converts domain.Salon to dto.SalonResponse
func toSalonResponse(salon *domain.Salon) *dto.SalonResponse {
	return &dto.SalonResponse{
		ID:        salon.ID,
		Name:      salon.Name,
		Slug:      salon.Slug,
		Phone:     salon.Phone,
		Address:   salon.Address,
		LogoURL:   salon.LogoURL,
		Settings:  salon.Settings,
		IsActive:  salon.IsActive,
		CreatedAt: salon.CreatedAt.Format(time.RFC3339),
		UpdatedAt: salon.UpdatedAt.Format(time.RFC3339),
	}
}
