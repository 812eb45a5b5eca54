package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursebay/course-marketplace/internal/api/metrics"
	"github.com/coursebay/course-marketplace/internal/core/domain"
	"github.com/coursebay/course-marketplace/internal/core/ports"
)

// AccountService implements signup and login over one account namespace.
type AccountService struct {
	repo   ports.AccountRepository
	issuer *TokenIssuer
	role   string
	log    zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, issuer *TokenIssuer, role string, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, issuer: issuer, role: role, log: log}
}

// Signup inserts the account and issues a token. Uniqueness is enforced by
// the repository's unique index, not a read-then-write check, so concurrent
// signups with the same username cannot both succeed.
func (s *AccountService) Signup(ctx context.Context, username, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	account := &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.repo.Create(ctx, account); err != nil {
		return "", err
	}

	token, err := s.issuer.Issue(username)
	if err != nil {
		return "", err
	}

	metrics.SignupsTotal.WithLabelValues(s.role).Inc()
	s.log.Info().Str("username", username).Str("role", s.role).Msg("account created")

	return token, nil
}

// Login matches the username and compares the stored bcrypt hash. Unknown
// usernames and wrong passwords both collapse to ErrInvalidCredentials so the
// response does not reveal which accounts exist.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.LoginsTotal.WithLabelValues(s.role, "failure").Inc()
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues(s.role, "failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(username)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues(s.role, "success").Inc()
	s.log.Info().Str("username", username).Str("role", s.role).Msg("login succeeded")

	return token, nil
}
