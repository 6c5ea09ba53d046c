package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password.
var ErrInvalidCredentials = errors.New("invalid login")

// Authenticator checks a username/password pair and returns the matching user.
// The role it grants only decides which panels are shown.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

// CredentialAuthenticator checks passwords against bcrypt hashes kept in a UserRepository.
type CredentialAuthenticator struct {
	users repo.UserRepository
}

func NewCredentialAuthenticator(users repo.UserRepository) *CredentialAuthenticator {
	return &CredentialAuthenticator{users: users}
}

// Authenticate implements Authenticator.
func (a *CredentialAuthenticator) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	user, err := a.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
