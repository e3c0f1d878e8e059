// Package di builds the dependency graph of the API process.
package di

import (
	"github.com/elitebooker/elitebooker-backend/internal/events"
	"github.com/elitebooker/elitebooker-backend/internal/handler"
	"github.com/elitebooker/elitebooker-backend/internal/middleware"
	"github.com/elitebooker/elitebooker-backend/internal/repository"
	"github.com/elitebooker/elitebooker-backend/internal/service"
	"github.com/elitebooker/elitebooker-backend/pkg/config"
	"github.com/elitebooker/elitebooker-backend/pkg/database"
	redislib "github.com/elitebooker/elitebooker-backend/pkg/redis"
)

// Container holds all dependencies for the API process
type Container struct {
	Config *config.Config

	// Infrastructure
	DB        *database.PostgresDB
	Redis     *redislib.Client
	Publisher events.Publisher

	// Repositories
	AdminRepo      repository.AdminRepository
	SalonRepo      repository.SalonRepository
	ServiceRepo    repository.ServiceRepository
	SpecialistRepo repository.SpecialistRepository
	HeroRepo       repository.HeroRepository
	WaitlistRepo   repository.WaitlistRepository
	ConsentRepo    repository.ConsentRepository

	// Services
	AuthService     service.AuthService
	SalonService    service.SalonService
	CatalogService  service.CatalogService
	WaitlistService service.WaitlistService
	ConsentService  service.ConsentService
	PublicService   service.PublicService

	// Middleware
	AuditLogger *middleware.AuditLogger

	// Handlers
	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	SalonHandler    *handler.SalonHandler
	CatalogHandler  *handler.CatalogHandler
	WaitlistHandler *handler.WaitlistHandler
	ConsentHandler  *handler.ConsentHandler
	PublicHandler   *handler.PublicHandler
}

// ContainerConfig contains the externally-built infrastructure pieces
type ContainerConfig struct {
	Config    *config.Config
	DB        *database.PostgresDB
	Redis     *redislib.Client
	Publisher events.Publisher
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		Config:    cfg.Config,
		DB:        cfg.DB,
		Redis:     cfg.Redis,
		Publisher: cfg.Publisher,
	}

	pool := c.DB.Pool()

	// Repositories
	c.AdminRepo = repository.NewPostgresAdminRepository(pool)
	c.SalonRepo = repository.NewPostgresSalonRepository(pool)
	c.ServiceRepo = repository.NewPostgresServiceRepository(pool)
	c.SpecialistRepo = repository.NewPostgresSpecialistRepository(pool)
	c.HeroRepo = repository.NewPostgresHeroRepository(pool)
	c.WaitlistRepo = repository.NewPostgresWaitlistRepository(pool)
	c.ConsentRepo = repository.NewPostgresConsentRepository(pool)

	// Services
	limiter := service.NewRedisLoginLimiter(c.Redis, c.Config.Login.MaxAttempts, c.Config.Login.Window)
	c.AuthService = service.NewAuthService(c.AdminRepo, limiter, service.SessionOptions{
		Secret: c.Config.Session.Secret,
		TTL:    c.Config.Session.TTL,
		Issuer: c.Config.Session.Issuer,
	})
	c.SalonService = service.NewSalonService(repository.NewPostgresProvisioner(pool), c.SalonRepo, c.AdminRepo, c.AuthService)
	c.CatalogService = service.NewCatalogService(c.ServiceRepo, c.SpecialistRepo, c.HeroRepo)
	c.WaitlistService = service.NewWaitlistService(c.WaitlistRepo, c.ServiceRepo, c.Publisher)
	c.ConsentService = service.NewConsentService(c.ConsentRepo, c.Publisher)
	c.PublicService = service.NewPublicService(c.SalonRepo, c.ServiceRepo, c.SpecialistRepo, c.HeroRepo, c.ConsentRepo, c.Redis)

	// Middleware
	c.AuditLogger = middleware.NewAuditLogger(&middleware.AuditConfig{
		Sink: middleware.NewPostgresAuditSink(pool),
	})

	// Handlers
	cookie := handler.CookieOptions{
		Name:   c.Config.Session.CookieName,
		Domain: c.Config.Session.CookieDomain,
		Secure: c.Config.Session.CookieSecure,
		TTL:    c.Config.Session.TTL,
	}
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService, cookie)
	c.SalonHandler = handler.NewSalonHandler(c.SalonService, c.AuthHandler)
	c.CatalogHandler = handler.NewCatalogHandler(c.CatalogService)
	c.WaitlistHandler = handler.NewWaitlistHandler(c.WaitlistService)
	c.ConsentHandler = handler.NewConsentHandler(c.ConsentService)
	c.PublicHandler = handler.NewPublicHandler(c.PublicService, c.WaitlistService)

	return c
}

// Close releases background workers and connections owned by the container
func (c *Container) Close() {
	if c.AuditLogger != nil {
		c.AuditLogger.Close()
	}
	if c.Publisher != nil {
		c.Publisher.Close()
	}
	if c.Redis != nil {
		c.Redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
