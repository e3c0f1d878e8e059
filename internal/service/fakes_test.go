package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
	"github.com/elitebooker/elitebooker-backend/internal/events"
	"github.com/elitebooker/elitebooker-backend/internal/repository"
)

var errFakeRepo = errors.New("repository failure")

// fakeAdminRepo is an in-memory AdminRepository
type fakeAdminRepo struct {
	mu         sync.RWMutex
	accounts   map[string]*domain.AdminAccount
	shouldFail bool
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{accounts: make(map[string]*domain.AdminAccount)}
}

func (f *fakeAdminRepo) Create(ctx context.Context, account *domain.AdminAccount) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return errFakeRepo
	}
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, errFakeRepo
	}
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) GetByID(ctx context.Context, id string) (*domain.AdminAccount, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, errFakeRepo
	}
	return f.accounts[id], nil
}

func (f *fakeAdminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	account, err := f.GetByEmail(ctx, email)
	return account != nil, err
}

// fakeLimiter is a LoginLimiter with a configurable verdict
type fakeLimiter struct {
	mu       sync.Mutex
	allow    bool
	attempts int
	resets   int
}

func newFakeLimiter() *fakeLimiter {
	return &fakeLimiter{allow: true}
}

func (f *fakeLimiter) Allow(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	return f.allow, nil
}

func (f *fakeLimiter) Reset(ctx context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets++
	return nil
}

// fakeWaitlistRepo is an in-memory WaitlistRepository
type fakeWaitlistRepo struct {
	mu         sync.RWMutex
	entries    map[string]*domain.WaitlistEntry
	shouldFail bool
}

func newFakeWaitlistRepo() *fakeWaitlistRepo {
	return &fakeWaitlistRepo{entries: make(map[string]*domain.WaitlistEntry)}
}

func (f *fakeWaitlistRepo) Create(ctx context.Context, entry *domain.WaitlistEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return errFakeRepo
	}
	copied := *entry
	f.entries[entry.ID] = &copied
	return nil
}

func (f *fakeWaitlistRepo) GetByID(ctx context.Context, tenantID, id string) (*domain.WaitlistEntry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, errFakeRepo
	}
	entry, ok := f.entries[id]
	if !ok || entry.TenantID != tenantID {
		return nil, nil
	}
	copied := *entry
	return &copied, nil
}

func (f *fakeWaitlistRepo) List(ctx context.Context, tenantID string, filter repository.WaitlistFilter) ([]*domain.WaitlistEntry, int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, 0, errFakeRepo
	}
	result := make([]*domain.WaitlistEntry, 0)
	for _, entry := range f.entries {
		if entry.TenantID != tenantID {
			continue
		}
		if filter.Status != nil && entry.Status != *filter.Status {
			continue
		}
		if filter.DesiredDate != nil && (entry.DesiredDate == nil || !entry.DesiredDate.Equal(*filter.DesiredDate)) {
			continue
		}
		copied := *entry
		result = append(result, &copied)
	}
	return result, int64(len(result)), nil
}

func (f *fakeWaitlistRepo) UpdateStatus(ctx context.Context, tenantID, id string, status domain.WaitlistStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return false, errFakeRepo
	}
	entry, ok := f.entries[id]
	if !ok || entry.TenantID != tenantID {
		return false, nil
	}
	entry.Status = status
	return true, nil
}

func (f *fakeWaitlistRepo) BulkUpdateStatus(ctx context.Context, tenantID string, ids []string, status domain.WaitlistStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return 0, errFakeRepo
	}
	var count int64
	for _, id := range ids {
		if entry, ok := f.entries[id]; ok && entry.TenantID == tenantID {
			entry.Status = status
			count++
		}
	}
	return count, nil
}

func (f *fakeWaitlistRepo) UpdateNotes(ctx context.Context, tenantID, id, notes string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return false, errFakeRepo
	}
	entry, ok := f.entries[id]
	if !ok || entry.TenantID != tenantID {
		return false, nil
	}
	entry.Notes = notes
	return true, nil
}

func (f *fakeWaitlistRepo) CountsByStatus(ctx context.Context, tenantID string) (map[domain.WaitlistStatus]int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, errFakeRepo
	}
	counts := make(map[domain.WaitlistStatus]int64)
	for _, status := range domain.WaitlistStatuses {
		counts[status] = 0
	}
	for _, entry := range f.entries {
		if entry.TenantID == tenantID {
			counts[entry.Status]++
		}
	}
	return counts, nil
}

// fakeConsentRepo is an in-memory ConsentRepository
type fakeConsentRepo struct {
	mu         sync.RWMutex
	templates  map[string]*domain.ConsentTemplate
	shouldFail bool
}

func newFakeConsentRepo() *fakeConsentRepo {
	return &fakeConsentRepo{templates: make(map[string]*domain.ConsentTemplate)}
}

func (f *fakeConsentRepo) Create(ctx context.Context, template *domain.ConsentTemplate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return errFakeRepo
	}
	copied := *template
	f.templates[template.ID] = &copied
	return nil
}

func (f *fakeConsentRepo) GetByID(ctx context.Context, tenantID, id string) (*domain.ConsentTemplate, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, errFakeRepo
	}
	template, ok := f.templates[id]
	if !ok || template.TenantID != tenantID {
		return nil, nil
	}
	copied := *template
	return &copied, nil
}

func (f *fakeConsentRepo) List(ctx context.Context, tenantID string, filter repository.ConsentFilter) ([]*domain.ConsentTemplate, int64, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, 0, errFakeRepo
	}
	result := make([]*domain.ConsentTemplate, 0)
	for _, template := range f.templates {
		if template.TenantID != tenantID {
			continue
		}
		if filter.Status != nil && template.Status != *filter.Status {
			continue
		}
		copied := *template
		result = append(result, &copied)
	}
	return result, int64(len(result)), nil
}

func (f *fakeConsentRepo) Update(ctx context.Context, tenantID string, template *domain.ConsentTemplate) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return false, errFakeRepo
	}
	existing, ok := f.templates[template.ID]
	if !ok || existing.TenantID != tenantID || existing.Status != domain.ConsentStatusDraft {
		return false, nil
	}
	copied := *template
	copied.Status = existing.Status
	f.templates[template.ID] = &copied
	return true, nil
}

func (f *fakeConsentRepo) UpdateStatus(ctx context.Context, tenantID, id string, from, to domain.ConsentStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return false, errFakeRepo
	}
	template, ok := f.templates[id]
	if !ok || template.TenantID != tenantID || template.Status != from {
		return false, nil
	}
	template.Status = to
	return true, nil
}

func (f *fakeConsentRepo) Delete(ctx context.Context, tenantID, id string, status domain.ConsentStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return false, errFakeRepo
	}
	template, ok := f.templates[id]
	if !ok || template.TenantID != tenantID || template.Status != status {
		return false, nil
	}
	delete(f.templates, id)
	return true, nil
}

func (f *fakeConsentRepo) MaxVersion(ctx context.Context, tenantID, name string) (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return 0, errFakeRepo
	}
	max := 0
	for _, template := range f.templates {
		if template.TenantID == tenantID && template.Name == name && template.Version > max {
			max = template.Version
		}
	}
	return max, nil
}

// fakeServiceRepo is an in-memory ServiceRepository
type fakeServiceRepo struct {
	mu         sync.RWMutex
	services   map[string]*domain.Service
	shouldFail bool
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*domain.Service)}
}

func (f *fakeServiceRepo) Create(ctx context.Context, service *domain.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return errFakeRepo
	}
	copied := *service
	f.services[service.ID] = &copied
	return nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, tenantID, id string) (*domain.Service, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, errFakeRepo
	}
	service, ok := f.services[id]
	if !ok || service.TenantID != tenantID {
		return nil, nil
	}
	copied := *service
	return &copied, nil
}

func (f *fakeServiceRepo) List(ctx context.Context, tenantID string, includeInactive bool) ([]*domain.Service, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, errFakeRepo
	}
	result := make([]*domain.Service, 0)
	for _, service := range f.services {
		if service.TenantID != tenantID {
			continue
		}
		if !includeInactive && !service.IsActive {
			continue
		}
		copied := *service
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, tenantID string, service *domain.Service) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return false, errFakeRepo
	}
	existing, ok := f.services[service.ID]
	if !ok || existing.TenantID != tenantID {
		return false, nil
	}
	copied := *service
	f.services[service.ID] = &copied
	return true, nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return false, errFakeRepo
	}
	service, ok := f.services[id]
	if !ok || service.TenantID != tenantID {
		return false, nil
	}
	delete(f.services, id)
	return true, nil
}

// fakeSpecialistRepo is an in-memory SpecialistRepository
type fakeSpecialistRepo struct {
	mu          sync.RWMutex
	specialists map[string]*domain.Specialist
	shouldFail  bool
}

func newFakeSpecialistRepo() *fakeSpecialistRepo {
	return &fakeSpecialistRepo{specialists: make(map[string]*domain.Specialist)}
}

func (f *fakeSpecialistRepo) Create(ctx context.Context, specialist *domain.Specialist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return errFakeRepo
	}
	copied := *specialist
	f.specialists[specialist.ID] = &copied
	return nil
}

func (f *fakeSpecialistRepo) GetByID(ctx context.Context, tenantID, id string) (*domain.Specialist, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, errFakeRepo
	}
	specialist, ok := f.specialists[id]
	if !ok || specialist.TenantID != tenantID {
		return nil, nil
	}
	copied := *specialist
	return &copied, nil
}

func (f *fakeSpecialistRepo) List(ctx context.Context, tenantID string, includeInactive bool) ([]*domain.Specialist, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, errFakeRepo
	}
	result := make([]*domain.Specialist, 0)
	for _, specialist := range f.specialists {
		if specialist.TenantID != tenantID {
			continue
		}
		if !includeInactive && !specialist.IsActive {
			continue
		}
		copied := *specialist
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeSpecialistRepo) Update(ctx context.Context, tenantID string, specialist *domain.Specialist) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return false, errFakeRepo
	}
	existing, ok := f.specialists[specialist.ID]
	if !ok || existing.TenantID != tenantID {
		return false, nil
	}
	copied := *specialist
	f.specialists[specialist.ID] = &copied
	return true, nil
}

func (f *fakeSpecialistRepo) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return false, errFakeRepo
	}
	specialist, ok := f.specialists[id]
	if !ok || specialist.TenantID != tenantID {
		return false, nil
	}
	delete(f.specialists, id)
	return true, nil
}

// fakeHeroRepo is an in-memory HeroRepository keyed by tenant
type fakeHeroRepo struct {
	mu         sync.RWMutex
	heroes     map[string]*domain.HeroSection
	shouldFail bool
}

func newFakeHeroRepo() *fakeHeroRepo {
	return &fakeHeroRepo{heroes: make(map[string]*domain.HeroSection)}
}

func (f *fakeHeroRepo) GetByTenant(ctx context.Context, tenantID string) (*domain.HeroSection, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, errFakeRepo
	}
	hero, ok := f.heroes[tenantID]
	if !ok {
		return nil, nil
	}
	copied := *hero
	return &copied, nil
}

func (f *fakeHeroRepo) Upsert(ctx context.Context, hero *domain.HeroSection) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return errFakeRepo
	}
	copied := *hero
	f.heroes[hero.TenantID] = &copied
	return nil
}

// fakeProvisioner is an in-memory TenantProvisioner writing both rows to
// the in-memory repos, or neither when failing
type fakeProvisioner struct {
	salonRepo  *fakeSalonRepo
	adminRepo  *fakeAdminRepo
	shouldFail bool
}

func (f *fakeProvisioner) ProvisionTenant(ctx context.Context, salon *domain.Salon, admin *domain.AdminAccount) error {
	if f.shouldFail {
		return errFakeRepo
	}
	if err := f.salonRepo.Create(ctx, salon); err != nil {
		return err
	}
	return f.adminRepo.Create(ctx, admin)
}

// fakeSalonRepo is an in-memory SalonRepository
type fakeSalonRepo struct {
	mu         sync.RWMutex
	salons     map[string]*domain.Salon
	shouldFail bool
}

func newFakeSalonRepo() *fakeSalonRepo {
	return &fakeSalonRepo{salons: make(map[string]*domain.Salon)}
}

func (f *fakeSalonRepo) Create(ctx context.Context, salon *domain.Salon) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return errFakeRepo
	}
	copied := *salon
	f.salons[salon.ID] = &copied
	return nil
}

func (f *fakeSalonRepo) GetByID(ctx context.Context, id string) (*domain.Salon, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, errFakeRepo
	}
	salon, ok := f.salons[id]
	if !ok || salon.DeletedAt != nil {
		return nil, nil
	}
	copied := *salon
	return &copied, nil
}

func (f *fakeSalonRepo) GetBySlug(ctx context.Context, slug string) (*domain.Salon, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, errFakeRepo
	}
	for _, salon := range f.salons {
		if salon.Slug == slug && salon.DeletedAt == nil {
			copied := *salon
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSalonRepo) List(ctx context.Context, page, limit int, isActive *bool, search string) ([]*domain.Salon, int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.shouldFail {
		return nil, 0, errFakeRepo
	}
	result := make([]*domain.Salon, 0)
	for _, salon := range f.salons {
		if salon.DeletedAt != nil {
			continue
		}
		if isActive != nil && salon.IsActive != *isActive {
			continue
		}
		copied := *salon
		result = append(result, &copied)
	}
	return result, len(result), nil
}

func (f *fakeSalonRepo) Update(ctx context.Context, salon *domain.Salon) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return errFakeRepo
	}
	copied := *salon
	f.salons[salon.ID] = &copied
	return nil
}

func (f *fakeSalonRepo) SoftDelete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail {
		return errFakeRepo
	}
	if salon, ok := f.salons[id]; ok {
		now := time.Now()
		salon.DeletedAt = &now
		salon.IsActive = false
	}
	return nil
}

func (f *fakeSalonRepo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	salon, err := f.GetBySlug(ctx, slug)
	return salon != nil, err
}

// capturePublisher records published events
type capturePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturePublisher) Publish(ctx context.Context, event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *capturePublisher) Close() {}

func (p *capturePublisher) published() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	result := make([]events.Event, len(p.events))
	copy(result, p.events)
	return result
}
