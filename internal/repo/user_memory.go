package repo

import (
	"sync"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: []models.User{},
	}
}

// DefaultAccount is a username/password pair granted a role at startup.
type DefaultAccount struct {
	Username string
	Password string
	Role     models.Role
}

// DefaultAccounts are the two built-in logins of the inventory manager.
var DefaultAccounts = []DefaultAccount{
	{Username: "admin", Password: "123", Role: models.RoleAdmin},
	{Username: "user", Password: "123", Role: models.RoleUser},
}

// NewSeededUserRepository creates a repository holding the given accounts with
// bcrypt-hashed passwords.
func NewSeededUserRepository(accounts []DefaultAccount) (*InMemoryUserRepository, error) {
	r := NewInMemoryUserRepository()
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if _, err := r.CreateUser(models.User{Username: a.Username, PasswordHash: string(hash), Role: a.Role}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) CreateUser(u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == u.Username {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}

	u.ID = len(r.users) + 1
	r.users = append(r.users, u)
	return u, nil
}
