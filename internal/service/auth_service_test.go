package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
	"github.com/elitebooker/elitebooker-backend/internal/dto"
)

const testPassword = "correct-horse-battery"

func testSessionOptions() SessionOptions {
	return SessionOptions{
		Secret: "test-secret-key-for-sessions",
		TTL:    time.Hour,
		Issuer: "elitebooker-test",
	}
}

func seedAdmin(t *testing.T, repo *fakeAdminRepo, account *domain.AdminAccount) *domain.AdminAccount {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	account.PasswordHash = string(hash)
	if account.ID == "" {
		account.ID = "admin-1"
	}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid credentials issue a session", func(t *testing.T) {
		repo := newFakeAdminRepo()
		limiter := newFakeLimiter()
		svc := NewAuthService(repo, limiter, testSessionOptions())

		seedAdmin(t, repo, &domain.AdminAccount{
			Email:    "owner@glowspa.test",
			Name:     "Owner",
			Role:     domain.RoleTenantAdmin,
			TenantID: "tenant-1",
			IsActive: true,
		})

		session, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "owner@glowspa.test",
			Password: testPassword,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, "owner@glowspa.test", session.Admin.Email)
		assert.Equal(t, "tenant-1", session.Admin.TenantID)
		assert.Equal(t, 1, limiter.resets)
	})

	t.Run("email is matched case-insensitively", func(t *testing.T) {
		repo := newFakeAdminRepo()
		svc := NewAuthService(repo, newFakeLimiter(), testSessionOptions())

		seedAdmin(t, repo, &domain.AdminAccount{
			Email:    "owner@glowspa.test",
			Role:     domain.RoleTenantAdmin,
			TenantID: "tenant-1",
			IsActive: true,
		})

		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "  Owner@GlowSpa.Test ",
			Password: testPassword,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown email yields the generic credential error", func(t *testing.T) {
		svc := NewAuthService(newFakeAdminRepo(), newFakeLimiter(), testSessionOptions())

		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@glowspa.test",
			Password: testPassword,
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password yields the same error as unknown email", func(t *testing.T) {
		repo := newFakeAdminRepo()
		svc := NewAuthService(repo, newFakeLimiter(), testSessionOptions())

		seedAdmin(t, repo, &domain.AdminAccount{
			Email:    "owner@glowspa.test",
			Role:     domain.RoleTenantAdmin,
			TenantID: "tenant-1",
			IsActive: true,
		})

		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "owner@glowspa.test",
			Password: "not-the-password",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled account yields the same error", func(t *testing.T) {
		repo := newFakeAdminRepo()
		svc := NewAuthService(repo, newFakeLimiter(), testSessionOptions())

		seedAdmin(t, repo, &domain.AdminAccount{
			Email:    "owner@glowspa.test",
			Role:     domain.RoleTenantAdmin,
			TenantID: "tenant-1",
			IsActive: false,
		})

		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "owner@glowspa.test",
			Password: testPassword,
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("throttled email is rejected before the credential check", func(t *testing.T) {
		repo := newFakeAdminRepo()
		limiter := newFakeLimiter()
		limiter.allow = false
		svc := NewAuthService(repo, limiter, testSessionOptions())

		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Email:    "owner@glowspa.test",
			Password: testPassword,
		})
		assert.ErrorIs(t, err, ErrTooManyAttempts)
	})
}

func TestAuthService_IssueAndValidate(t *testing.T) {
	svc := NewAuthService(newFakeAdminRepo(), newFakeLimiter(), testSessionOptions())

	account := &domain.AdminAccount{
		ID:       "admin-7",
		Email:    "owner@glowspa.test",
		Role:     domain.RoleTenantAdmin,
		TenantID: "tenant-7",
		IsActive: true,
	}

	t.Run("issued token round-trips into a principal", func(t *testing.T) {
		session, err := svc.IssueSession(account)
		require.NoError(t, err)

		principal, err := svc.Validate(session.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin-7", principal.AdminID)
		assert.Equal(t, "owner@glowspa.test", principal.Email)
		assert.Equal(t, domain.RoleTenantAdmin, principal.Role)
		assert.Equal(t, "tenant-7", principal.TenantID)
		assert.True(t, principal.ExpiresAt.After(time.Now()))
	})

	t.Run("super_admin token carries no tenant", func(t *testing.T) {
		session, err := svc.IssueSession(&domain.AdminAccount{
			ID:       "admin-8",
			Email:    "platform@elitebooker.test",
			Role:     domain.RoleSuperAdmin,
			IsActive: true,
		})
		require.NoError(t, err)

		principal, err := svc.Validate(session.Token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleSuperAdmin, principal.Role)
		assert.Empty(t, principal.TenantID)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		session, err := svc.IssueSession(account)
		require.NoError(t, err)

		tampered := session.Token[:len(session.Token)-2] + "xx"
		_, err = svc.Validate(tampered)
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		otherOpts := testSessionOptions()
		otherOpts.Secret = "a-completely-different-secret"
		other := NewAuthService(newFakeAdminRepo(), newFakeLimiter(), otherOpts)

		session, err := other.IssueSession(account)
		require.NoError(t, err)

		_, err = svc.Validate(session.Token)
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expiredOpts := testSessionOptions()
		expiredOpts.TTL = -time.Minute
		expired := NewAuthService(newFakeAdminRepo(), newFakeLimiter(), expiredOpts)

		session, err := expired.IssueSession(account)
		require.NoError(t, err)

		_, err = svc.Validate(session.Token)
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.Validate("not-a-jwt")
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Run("active account gets a fresh token", func(t *testing.T) {
		repo := newFakeAdminRepo()
		svc := NewAuthService(repo, newFakeLimiter(), testSessionOptions())

		account := seedAdmin(t, repo, &domain.AdminAccount{
			ID:       "admin-9",
			Email:    "owner@glowspa.test",
			Role:     domain.RoleTenantAdmin,
			TenantID: "tenant-9",
			IsActive: true,
		})

		session, err := svc.Refresh(context.Background(), &domain.Principal{
			AdminID:  account.ID,
			Role:     domain.RoleTenantAdmin,
			TenantID: "tenant-9",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
	})

	t.Run("account disabled since issuance gets nothing", func(t *testing.T) {
		repo := newFakeAdminRepo()
		svc := NewAuthService(repo, newFakeLimiter(), testSessionOptions())

		account := seedAdmin(t, repo, &domain.AdminAccount{
			ID:       "admin-10",
			Email:    "owner@glowspa.test",
			Role:     domain.RoleTenantAdmin,
			TenantID: "tenant-10",
			IsActive: false,
		})

		_, err := svc.Refresh(context.Background(), &domain.Principal{AdminID: account.ID})
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})

	t.Run("removed account gets nothing", func(t *testing.T) {
		svc := NewAuthService(newFakeAdminRepo(), newFakeLimiter(), testSessionOptions())

		_, err := svc.Refresh(context.Background(), &domain.Principal{AdminID: "gone"})
		assert.ErrorIs(t, err, ErrSessionInvalid)
	})
}
