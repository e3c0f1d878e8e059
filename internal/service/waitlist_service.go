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
	ErrWaitlistEntryNotFound = errors.New("waitlist entry not found")
	ErrInvalidDesiredDate    = errors.New("invalid desired date")
)

// WaitlistService defines the interface for waitlist management.
// Entries are never deleted; removal is a status like any other, and any
// status can be set from any other. Writing the current status again is a
// successful no-op, which makes retried requests harmless.
type WaitlistService interface {
	// Join adds a client to a salon's waitlist from the public site
	Join(ctx context.Context, tenantID string, req *dto.CreateWaitlistEntryRequest) (*dto.WaitlistEntryResponse, error)
	// Get retrieves one entry owned by the caller's salon
	Get(ctx context.Context, tenantID, id string) (*dto.WaitlistEntryResponse, error)
	// List retrieves the caller salon's entries with filtering and pagination
	List(ctx context.Context, tenantID string, query *dto.ListWaitlistQuery) (*dto.ListWaitlistResponse, error)
	// UpdateStatus sets one entry's status
	UpdateStatus(ctx context.Context, principal *domain.Principal, id string, req *dto.UpdateWaitlistStatusRequest) (*dto.WaitlistEntryResponse, error)
	// BulkUpdateStatus sets the status of many entries and reports how many changed
	BulkUpdateStatus(ctx context.Context, principal *domain.Principal, req *dto.BulkUpdateWaitlistStatusRequest) (*dto.BulkUpdateWaitlistStatusResponse, error)
	// UpdateNotes replaces one entry's administrative notes
	UpdateNotes(ctx context.Context, tenantID, id string, req *dto.UpdateWaitlistNotesRequest) (*dto.WaitlistEntryResponse, error)
	// Stats reports the caller salon's per-status entry counts
	Stats(ctx context.Context, tenantID string) (*dto.WaitlistStatsResponse, error)
}

// waitlistService implements WaitlistService
type waitlistService struct {
	waitlistRepo repository.WaitlistRepository
	serviceRepo  repository.ServiceRepository
	publisher    events.Publisher
}

// NewWaitlistService creates a new WaitlistService
func NewWaitlistService(waitlistRepo repository.WaitlistRepository, serviceRepo repository.ServiceRepository, publisher events.Publisher) WaitlistService {
	return &waitlistService{
		waitlistRepo: waitlistRepo,
		serviceRepo:  serviceRepo,
		publisher:    publisher,
	}
}

// Join adds a client to a salon's waitlist from the public site. The owning
// salon comes from the resolved tenant, never from the payload.
func (s *waitlistService) Join(ctx context.Context, tenantID string, req *dto.CreateWaitlistEntryRequest) (*dto.WaitlistEntryResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, tenantID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	var desiredDate *time.Time
	if req.DesiredDate != "" {
		d, err := time.Parse("2006-01-02", req.DesiredDate)
		if err != nil {
			return nil, ErrInvalidDesiredDate
		}
		desiredDate = &d
	}

	now := time.Now()
	entry := &domain.WaitlistEntry{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		ServiceID:      req.ServiceID,
		SpecialistID:   req.SpecialistID,
		VariantName:    req.VariantName,
		DesiredDate:    desiredDate,
		TimePreference: req.TimePreference,
		Status:         domain.WaitlistStatusActive,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.waitlistRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.Event{
		Type:     events.TypeWaitlistJoined,
		TenantID: tenantID,
		EntityID: entry.ID,
		Payload:  map[string]interface{}{"service_id": entry.ServiceID},
	})

	return toWaitlistEntryResponse(entry), nil
}

// Get retrieves one entry owned by the caller's salon
func (s *waitlistService) Get(ctx context.Context, tenantID, id string) (*dto.WaitlistEntryResponse, error) {
	entry, err := s.waitlistRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrWaitlistEntryNotFound
	}
	return toWaitlistEntryResponse(entry), nil
}

// List retrieves the caller salon's entries with filtering and pagination
func (s *waitlistService) List(ctx context.Context, tenantID string, query *dto.ListWaitlistQuery) (*dto.ListWaitlistResponse, error) {
	query.SetDefaults()

	filter := repository.WaitlistFilter{
		Page:     query.Page,
		PageSize: query.Limit,
	}
	if query.Status != "" {
		status := domain.WaitlistStatus(query.Status)
		filter.Status = &status
	}
	if query.ServiceID != "" {
		filter.ServiceID = &query.ServiceID
	}
	if query.SpecialistID != "" {
		filter.SpecialistID = &query.SpecialistID
	}
	if query.DesiredDate != "" {
		d, err := time.Parse("2006-01-02", query.DesiredDate)
		if err != nil {
			return nil, ErrInvalidDesiredDate
		}
		filter.DesiredDate = &d
	}
	if query.Search != "" {
		filter.Search = &query.Search
	}

	entries, totalCount, err := s.waitlistRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	entryResponses := make([]dto.WaitlistEntryResponse, 0, len(entries))
	for _, entry := range entries {
		entryResponses = append(entryResponses, *toWaitlistEntryResponse(entry))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(query.Limit)))

	return &dto.ListWaitlistResponse{
		Entries:    entryResponses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus sets one entry's status. Writing the current status again
// succeeds without change.
func (s *waitlistService) UpdateStatus(ctx context.Context, principal *domain.Principal, id string, req *dto.UpdateWaitlistStatusRequest) (*dto.WaitlistEntryResponse, error) {
	tenantID := principal.TenantID

	entry, err := s.waitlistRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrWaitlistEntryNotFound
	}

	status := domain.WaitlistStatus(req.Status)
	if entry.Status != status {
		updated, err := s.waitlistRepo.UpdateStatus(ctx, tenantID, id, status)
		if err != nil {
			return nil, err
		}
		if !updated {
			return nil, ErrWaitlistEntryNotFound
		}
		entry.Status = status
		entry.UpdatedAt = time.Now()

		s.publisher.Publish(ctx, events.Event{
			Type:     events.TypeWaitlistStatus,
			TenantID: tenantID,
			EntityID: id,
			ActorID:  principal.AdminID,
			Payload:  map[string]interface{}{"status": req.Status},
		})
	}

	return toWaitlistEntryResponse(entry), nil
}

// BulkUpdateStatus sets the status of many entries in one write. The count
// reports rows actually modified; IDs outside the caller's salon simply do
// not match and are not an error.
func (s *waitlistService) BulkUpdateStatus(ctx context.Context, principal *domain.Principal, req *dto.BulkUpdateWaitlistStatusRequest) (*dto.BulkUpdateWaitlistStatusResponse, error) {
	status := domain.WaitlistStatus(req.Status)

	count, err := s.waitlistRepo.BulkUpdateStatus(ctx, principal.TenantID, req.IDs, status)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		s.publisher.Publish(ctx, events.Event{
			Type:     events.TypeWaitlistStatus,
			TenantID: principal.TenantID,
			ActorID:  principal.AdminID,
			Payload:  map[string]interface{}{"status": req.Status, "modified_count": count},
		})
	}

	return &dto.BulkUpdateWaitlistStatusResponse{ModifiedCount: count}, nil
}

// UpdateNotes replaces one entry's administrative notes
func (s *waitlistService) UpdateNotes(ctx context.Context, tenantID, id string, req *dto.UpdateWaitlistNotesRequest) (*dto.WaitlistEntryResponse, error) {
	updated, err := s.waitlistRepo.UpdateNotes(ctx, tenantID, id, req.Notes)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrWaitlistEntryNotFound
	}
	return s.Get(ctx, tenantID, id)
}

// Stats reports the caller salon's per-status entry counts
func (s *waitlistService) Stats(ctx context.Context, tenantID string) (*dto.WaitlistStatsResponse, error) {
	counts, err := s.waitlistRepo.CountsByStatus(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(counts))
	for status, count := range counts {
		result[string(status)] = count
	}
	return &dto.WaitlistStatsResponse{Counts: result}, nil
}

// toWaitlistEntryResponse converts domain.WaitlistEntry to dto.WaitlistEntryResponse
func toWaitlistEntryResponse(entry *domain.WaitlistEntry) *dto.WaitlistEntryResponse {
	resp := &dto.WaitlistEntryResponse{
		ID:             entry.ID,
		ClientName:     entry.ClientName,
		ClientEmail:    entry.ClientEmail,
		ClientPhone:    entry.ClientPhone,
		ServiceID:      entry.ServiceID,
		SpecialistID:   entry.SpecialistID,
		VariantName:    entry.VariantName,
		TimePreference: entry.TimePreference,
		Status:         string(entry.Status),
		Notes:          entry.Notes,
		CreatedAt:      entry.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      entry.UpdatedAt.Format(time.RFC3339),
	}
	if entry.DesiredDate != nil {
		resp.DesiredDate = entry.DesiredDate.Format("2006-01-02")
	}
	return resp
}
