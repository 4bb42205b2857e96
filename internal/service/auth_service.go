package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/medcare-africa/medcare-api/internal/domain/user"
	"github.com/medcare-africa/medcare-api/pkg/auth"
	"github.com/medcare-africa/medcare-api/pkg/metrics"
)

// The three demo accounts, one per role. There is no signup flow; these are
// the only credentials the service ever accepts.
var demoCredentials = []struct {
	userID   int
	email    string
	password string
}{
	{1, "admin@medcare.africa", "Admin123!"},
	{2, "doctor@medcare.africa", "Doctor123!"},
	{3, "patient@medcare.africa", "Patient123!"},
}

type demoAccount struct {
	userID       int
	email        string
	passwordHash []byte
}

type AuthService struct {
	users    user.Repository
	accounts []demoAccount
	token    string
	auditSvc *AuditService
	metrics  *metrics.Collector
	log      *zap.Logger
}

// NewAuthService hashes the demo passwords and mints the static session
// token once. Every successful login returns the same token string; no
// endpoint ever validates it.
func NewAuthService(
	users user.Repository,
	issuer *auth.TokenIssuer,
	auditSvc *AuditService,
	m *metrics.Collector,
	log *zap.Logger,
) (*AuthService, error) {
	token, err := issuer.Issue()
	if err != nil {
		return nil, fmt.Errorf("issuing session token: %w", err)
	}

	accounts := make([]demoAccount, 0, len(demoCredentials))
	for _, c := range demoCredentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing demo password: %w", err)
		}
		accounts = append(accounts, demoAccount{userID: c.userID, email: c.email, passwordHash: hash})
	}

	return &AuthService{
		users:    users,
		accounts: accounts,
		token:    token,
		auditSvc: auditSvc,
		metrics:  m,
		log:      log,
	}, nil
}

// Login matches the supplied credentials against the demo accounts and, on
// success, returns the static token and the redacted user profile.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	var account *demoAccount
	for i := range s.accounts {
		if s.accounts[i].email == email {
			account = &s.accounts[i]
			break
		}
	}

	if account == nil {
		// Burn a bcrypt round so response timing does not reveal whether
		// the email exists.
		_, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		s.metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(account.passwordHash, []byte(password)); err != nil {
		s.log.Warn("failed login attempt", zap.String("email", email))
		s.metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, ErrInvalidCredentials
	}

	u, err := s.users.GetByID(ctx, account.userID)
	if err != nil {
		return "", nil, fmt.Errorf("loading account profile: %w", err)
	}

	s.metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.auditSvc.LogAsync(ctx, AuditEntry{
		Action:       "login",
		ResourceType: "session",
		Actor:        email,
	})
	s.log.Info("user logged in",
		zap.Int("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)

	return s.token, u.Redacted(), nil
}
