package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
	"github.com/elitebooker/elitebooker-backend/internal/dto"
	"github.com/elitebooker/elitebooker-backend/internal/events"
	"github.com/elitebooker/elitebooker-backend/internal/repository"
)

var (
	ErrConsentTemplateNotFound  = errors.New("consent template not found")
	ErrInvalidConsentTransition = errors.New("consent template status does not allow this operation")
)

// ConsentService defines the interface for consent template lifecycle
// management. Templates move draft -> published -> archived; content is
// frozen at publish, and changing a published form means forking it into a
// new draft version.
type ConsentService interface {
	// Create creates a version-1 draft template
	Create(ctx context.Context, tenantID string, req *dto.CreateConsentTemplateRequest) (*dto.ConsentTemplateResponse, error)
	// Get retrieves one template owned by the caller's salon
	Get(ctx context.Context, tenantID, id string) (*dto.ConsentTemplateResponse, error)
	// List retrieves the caller salon's templates with filtering and pagination
	List(ctx context.Context, tenantID string, query *dto.ListConsentTemplatesQuery) (*dto.ListConsentTemplatesResponse, error)
	// Update edits a draft template's content
	Update(ctx context.Context, tenantID, id string, req *dto.UpdateConsentTemplateRequest) (*dto.ConsentTemplateResponse, error)
	// Publish freezes a draft and makes it the live form
	Publish(ctx context.Context, principal *domain.Principal, id string) (*dto.ConsentTemplateResponse, error)
	// Archive retires a published template
	Archive(ctx context.Context, principal *domain.Principal, id string) (*dto.ConsentTemplateResponse, error)
	// Delete removes a draft outright
	Delete(ctx context.Context, tenantID, id string) error
	// NewVersion forks a published template into a draft at the next version
	NewVersion(ctx context.Context, tenantID, id string) (*dto.ConsentTemplateResponse, error)
}

// consentService implements ConsentService
type consentService struct {
	consentRepo repository.ConsentRepository
	publisher   events.Publisher
}

// NewConsentService creates a new ConsentService
func NewConsentService(consentRepo repository.ConsentRepository, publisher events.Publisher) ConsentService {
	return &consentService{
		consentRepo: consentRepo,
		publisher:   publisher,
	}
}

// Create creates a version-1 draft template
func (s *consentService) Create(ctx context.Context, tenantID string, req *dto.CreateConsentTemplateRequest) (*dto.ConsentTemplateResponse, error) {
	now := time.Now()
	template := &domain.ConsentTemplate{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Version:     1,
		Status:      domain.ConsentStatusDraft,
		Sections:    toSections(req.Sections),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.RequiredFor != nil {
		template.RequiredFor = toRequirement(*req.RequiredFor)
	}
	if template.RequiredFor.ServiceIDs == nil {
		template.RequiredFor.ServiceIDs = []string{}
	}

	if err := s.consentRepo.Create(ctx, template); err != nil {
		return nil, err
	}
	return toConsentTemplateResponse(template), nil
}

// Get retrieves one template owned by the caller's salon
func (s *consentService) Get(ctx context.Context, tenantID, id string) (*dto.ConsentTemplateResponse, error) {
	template, err := s.consentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrConsentTemplateNotFound
	}
	return toConsentTemplateResponse(template), nil
}

// List retrieves the caller salon's templates with filtering and pagination
func (s *consentService) List(ctx context.Context, tenantID string, query *dto.ListConsentTemplatesQuery) (*dto.ListConsentTemplatesResponse, error) {
	query.SetDefaults()

	filter := repository.ConsentFilter{
		Page:     query.Page,
		PageSize: query.Limit,
	}
	if query.Status != "" {
		status := domain.ConsentStatus(query.Status)
		filter.Status = &status
	}
	if query.Search != "" {
		filter.Search = &query.Search
	}

	templates, totalCount, err := s.consentRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	templateResponses := make([]dto.ConsentTemplateResponse, 0, len(templates))
	for _, template := range templates {
		templateResponses = append(templateResponses, *toConsentTemplateResponse(template))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListConsentTemplatesResponse{
		Templates:  templateResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update edits a draft template's content. Published and archived content
// is frozen, so those report an invalid transition.
func (s *consentService) Update(ctx context.Context, tenantID, id string, req *dto.UpdateConsentTemplateRequest) (*dto.ConsentTemplateResponse, error) {
	if valid, _ := req.Validate(); !valid {
		return nil, ErrEmptyUpdate
	}

	template, err := s.consentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrConsentTemplateNotFound
	}
	if !template.CanEdit() {
		return nil, ErrInvalidConsentTransition
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.Sections != nil {
		template.Sections = toSections(*req.Sections)
	}
	if req.RequiredFor != nil {
		template.RequiredFor = toRequirement(*req.RequiredFor)
	}

	// The draft check repeats inside the UPDATE; a publish that lands in
	// between makes this a lost race, not a silent overwrite.
	updated, err := s.consentRepo.Update(ctx, tenantID, template)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrInvalidConsentTransition
	}
	return toConsentTemplateResponse(template), nil
}

// Publish freezes a draft and makes it the live form
func (s *consentService) Publish(ctx context.Context, principal *domain.Principal, id string) (*dto.ConsentTemplateResponse, error) {
	return s.transition(ctx, principal, id,
		domain.ConsentStatusDraft, domain.ConsentStatusPublished, events.TypeConsentPublished)
}

// Archive retires a published template
func (s *consentService) Archive(ctx context.Context, principal *domain.Principal, id string) (*dto.ConsentTemplateResponse, error) {
	return s.transition(ctx, principal, id,
		domain.ConsentStatusPublished, domain.ConsentStatusArchived, events.TypeConsentArchived)
}

// transition performs one conditional status move
func (s *consentService) transition(ctx context.Context, principal *domain.Principal, id string, from, to domain.ConsentStatus, eventType string) (*dto.ConsentTemplateResponse, error) {
	tenantID := principal.TenantID

	template, err := s.consentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrConsentTemplateNotFound
	}

	moved, err := s.consentRepo.UpdateStatus(ctx, tenantID, id, from, to)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrInvalidConsentTransition
	}

	template.Status = to
	template.UpdatedAt = time.Now()

	s.publisher.Publish(ctx, events.Event{
		Type:     eventType,
		TenantID: tenantID,
		EntityID: id,
		ActorID:  principal.AdminID,
		Payload:  map[string]interface{}{"version": template.Version},
	})

	return toConsentTemplateResponse(template), nil
}

// Delete removes a draft outright. Anything that was ever published stays
// on record.
func (s *consentService) Delete(ctx context.Context, tenantID, id string) error {
	template, err := s.consentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if template == nil {
		return ErrConsentTemplateNotFound
	}

	deleted, err := s.consentRepo.Delete(ctx, tenantID, id, domain.ConsentStatusDraft)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInvalidConsentTransition
	}
	return nil
}

// NewVersion forks a published template into a draft at the next version.
// The published record is left untouched and stays live until archived.
func (s *consentService) NewVersion(ctx context.Context, tenantID, id string) (*dto.ConsentTemplateResponse, error) {
	template, err := s.consentRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrConsentTemplateNotFound
	}
	if !template.CanFork() {
		return nil, ErrInvalidConsentTransition
	}

	maxVersion, err := s.consentRepo.MaxVersion(ctx, tenantID, template.Name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	fork := &domain.ConsentTemplate{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Name:        template.Name,
		Description: template.Description,
		Version:     maxVersion + 1,
		Status:      domain.ConsentStatusDraft,
		Sections:    template.Sections,
		RequiredFor: template.RequiredFor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.consentRepo.Create(ctx, fork); err != nil {
		return nil, err
	}
	return toConsentTemplateResponse(fork), nil
}

func toSections(payloads []dto.ConsentSectionPayload) []domain.ConsentSection {
	sections := make([]domain.ConsentSection, 0, len(payloads))
	for _, p := range payloads {
		sections = append(sections, domain.ConsentSection{
			Type:     domain.ConsentSectionType(p.Type),
			Content:  p.Content,
			Order:    p.Order,
			Required: p.Required,
			Options:  p.Options,
		})
	}
	return sections
}

func toSectionPayloads(sections []domain.ConsentSection) []dto.ConsentSectionPayload {
	payloads := make([]dto.ConsentSectionPayload, 0, len(sections))
	for _, s := range sections {
		payloads = append(payloads, dto.ConsentSectionPayload{
			Type:     string(s.Type),
			Content:  s.Content,
			Order:    s.Order,
			Required: s.Required,
			Options:  s.Options,
		})
	}
	return payloads
}

func toRequirement(p dto.ConsentRequirementPayload) domain.ConsentRequirement {
	return domain.ConsentRequirement{
		ServiceIDs: p.ServiceIDs,
		Frequency:  p.Frequency,
	}
}

// toConsentTemplateResponse converts domain.ConsentTemplate to dto.ConsentTemplateResponse
func toConsentTemplateResponse(template *domain.ConsentTemplate) *dto.ConsentTemplateResponse {
	return &dto.ConsentTemplateResponse{
		ID:          template.ID,
		Name:        template.Name,
		Description: template.Description,
		Version:     template.Version,
		Status:      string(template.Status),
		Sections:    toSectionPayloads(template.Sections),
		RequiredFor: dto.ConsentRequirementPayload{
			ServiceIDs: template.RequiredFor.ServiceIDs,
			Frequency:  template.RequiredFor.Frequency,
		},
		CreatedAt: template.CreatedAt.Format(time.RFC3339),
		UpdatedAt: template.UpdatedAt.Format(time.RFC3339),
	}
}
