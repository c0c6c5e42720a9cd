package identity

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	domain "github.com/kalori/backend/internal/domain/identity"
	"github.com/kalori/backend/internal/domain/shared"
	"github.com/kalori/backend/internal/infrastructure/auth"
)

// TokenVerifier validates a bearer token and yields the caller identity
type TokenVerifier interface {
	Verify(tokenString string) (*auth.Identity, error)
}

// AuthResult is a successful gate outcome: the matched admin row and the
// verified identity behind the credential
type AuthResult struct {
	Admin    *domain.AdminUser
	Identity *auth.Identity
}

// AdminGate resolves a bearer credential to an allow-listed admin account.
// The allow-list lives in admin_users rows seeded from configuration.
type AdminGate struct {
	verifier  TokenVerifier
	adminRepo domain.AdminUserRepository
	logger    *zap.Logger
}

// NewAdminGate creates a new AdminGate
func NewAdminGate(verifier TokenVerifier, adminRepo domain.AdminUserRepository, logger *zap.Logger) *AdminGate {
	return &AdminGate{
		verifier:  verifier,
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// VerifyBearer parses an Authorization header value and verifies the token.
// Any malformed header or failed verification yields UNAUTHORIZED without
// touching the store. An email claim is not required here; phone and
// anonymous sign-ins carry only a uid.
func (g *AdminGate) VerifyBearer(authorization string) (*auth.Identity, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		return nil, shared.ErrUnauthorized
	}

	token := strings.TrimSpace(strings.TrimPrefix(authorization, prefix))
	identity, err := g.verifier.Verify(token)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	return identity, nil
}

// Authorize resolves an Authorization header to an admin account. The
// allow-list is keyed by email, so a token without an email claim is
// UNAUTHORIZED here. A valid credential that matches no active admin yields
// FORBIDDEN. When the match happened by email only, the row's uid is
// backfilled so subsequent calls match by uid directly.
func (g *AdminGate) Authorize(ctx context.Context, authorization string) (*AuthResult, error) {
	identity, err := g.VerifyBearer(authorization)
	if err != nil {
		return nil, err
	}
	if identity.Email == "" {
		return nil, shared.ErrUnauthorized
	}

	admin, err := g.adminRepo.FindActiveByUIDOrEmail(ctx, identity.UID, identity.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrForbidden
		}
		return nil, err
	}

	if admin.UID == "" {
		admin.LinkUID(identity.UID)
		if err := g.adminRepo.Save(ctx, admin); err != nil {
			return nil, err
		}
		g.logger.Info("Linked admin account to identity",
			zap.String("email", admin.Email),
			zap.String("uid", identity.UID),
		)
	}

	return &AuthResult{Admin: admin, Identity: identity}, nil
}

// IsAdmin reports whether the identity belongs to an active admin, without
// the backfill side effect
func (g *AdminGate) IsAdmin(ctx context.Context, identity *auth.Identity) (bool, error) {
	_, err := g.adminRepo.FindActiveByUIDOrEmail(ctx, identity.UID, identity.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// EnsureSeeded creates missing admin rows for the configured allow-list.
// Existing rows are left untouched so uid backfills survive restarts.
func (g *AdminGate) EnsureSeeded(ctx context.Context, emails []string) error {
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}

		_, err := g.adminRepo.FindByEmail(ctx, email)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		if err := g.adminRepo.Save(ctx, domain.NewAdminUser(email)); err != nil {
			return err
		}
		g.logger.Info("Seeded admin account", zap.String("email", email))
	}
	return nil
}
