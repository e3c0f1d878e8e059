package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
	"github.com/elitebooker/elitebooker-backend/internal/dto"
	"github.com/elitebooker/elitebooker-backend/internal/repository"
)

var (
	// ErrInvalidCredentials is returned for unknown email, disabled account
	// and wrong password alike, so responses cannot reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrSessionInvalid     = errors.New("session token is invalid or expired")
)

// LoginLimiter throttles credential checks per email address
type LoginLimiter interface {
	// Allow records one attempt and reports whether it may proceed
	Allow(ctx context.Context, email string) (bool, error)
	// Reset clears the attempt counter after a successful login
	Reset(ctx context.Context, email string) error
}

// SessionOptions configures token issuance
type SessionOptions struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthService defines the interface for credential verification and
// session token issuance
type AuthService interface {
	// Login verifies credentials and issues a session token
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	// IssueSession issues a session token for an already-verified account
	IssueSession(account *domain.AdminAccount) (*dto.SessionResponse, error)
	// Validate parses and verifies a session token into a Principal
	Validate(tokenString string) (*domain.Principal, error)
	// Refresh re-checks the account behind a live session and issues a fresh token
	Refresh(ctx context.Context, principal *domain.Principal) (*dto.SessionResponse, error)
}

// sessionClaims is the JWT payload of a session token
type sessionClaims struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	TenantID string `json:"tenant_id,omitempty"`
	jwt.RegisteredClaims
}

// authService implements AuthService
type authService struct {
	adminRepo repository.AdminRepository
	limiter   LoginLimiter
	opts      SessionOptions
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repository.AdminRepository, limiter LoginLimiter, opts SessionOptions) AuthService {
	return &authService{
		adminRepo: adminRepo,
		limiter:   limiter,
		opts:      opts,
	}
}

// Login verifies credentials and issues a session token
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	allowed, err := s.limiter.Allow(ctx, email)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrTooManyAttempts
	}

	account, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsActive {
		// Burn comparable time so a missing account is not distinguishable
		// from a wrong password by response latency.
		bcrypt.CompareHashAndPassword([]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		return nil, err
	}

	return s.IssueSession(account)
}

// IssueSession issues a session token for an already-verified account
func (s *authService) IssueSession(account *domain.AdminAccount) (*dto.SessionResponse, error) {
	now := time.Now()
	expiresAt := now.Add(s.opts.TTL)

	claims := sessionClaims{
		Email:    account.Email,
		Role:     string(account.Role),
		TenantID: account.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			Issuer:    s.opts.Issuer,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.opts.Secret))
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		Admin: dto.AdminResponse{
			ID:        account.ID,
			Email:     account.Email,
			Name:      account.Name,
			Role:      string(account.Role),
			TenantID:  account.TenantID,
			CreatedAt: account.CreatedAt.Format(time.RFC3339),
		},
	}, nil
}

// Validate parses and verifies a session token into a Principal
func (s *authService) Validate(tokenString string) (*domain.Principal, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrSessionInvalid
		}
		return []byte(s.opts.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrSessionInvalid
	}

	role := domain.Role(claims.Role)
	if !role.Valid() || claims.Subject == "" {
		return nil, ErrSessionInvalid
	}
	if role == domain.RoleTenantAdmin && claims.TenantID == "" {
		return nil, ErrSessionInvalid
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, ErrSessionInvalid
	}

	return &domain.Principal{
		AdminID:   claims.Subject,
		Email:     claims.Email,
		Role:      role,
		TenantID:  claims.TenantID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Refresh re-checks the account behind a live session and issues a fresh
// token. Accounts that were disabled or removed since issuance get nothing.
func (s *authService) Refresh(ctx context.Context, principal *domain.Principal) (*dto.SessionResponse, error) {
	account, err := s.adminRepo.GetByID(ctx, principal.AdminID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsActive {
		return nil, ErrSessionInvalid
	}
	return s.IssueSession(account)
}
