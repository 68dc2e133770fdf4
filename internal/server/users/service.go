package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/loginkeeper/internal/common"
)

// bcryptCost is the work factor for password digests. Raising it slows down
// offline brute-forcing of a leaked digest at the price of login latency.
const bcryptCost = 10

// Service owns password hashing and verification on top of the user
// repository. It is the only component that ever sees plaintext passwords,
// and it neither logs nor stores them.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register hashes the password and persists a new account. It fails with
// common.ErrValidation on empty input and common.ErrDuplicateUser when the
// username is already taken.
func (s *Service) Register(ctx context.Context, username string, password string) (*User, error) {

	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Username:     username,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			return nil, common.ErrDuplicateUser
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Verify looks up the account and compares the candidate password against
// the stored digest. The comparison is bcrypt's own, not byte equality.
// It fails with common.ErrorNotFound for an unknown username and
// common.ErrInvalidCredentials for a wrong password.
func (s *Service) Verify(ctx context.Context, username string, password string) (*User, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}
