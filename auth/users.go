package auth

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("auth: invalid credentials")

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// UserStore holds operator accounts with bcrypt-hashed passwords.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]User
	cost  int
}

func NewUserStore(cost int) *UserStore {
	return &UserStore{users: make(map[string]User), cost: cost}
}

// NewDemoUserStore returns a store holding the two demo operators.
func NewDemoUserStore(cost int) (*UserStore, error) {
	s := NewUserStore(cost)
	if err := s.Add(User{ID: 1, Username: "admin", Email: "admin@example.com", Role: RoleAdmin}, "admin123"); err != nil {
		return nil, err
	}
	if err := s.Add(User{ID: 2, Username: "user", Email: "user@example.com", Role: RoleUser}, "user123"); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *UserStore) Add(user User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	s.mu.Lock()
	s.users[user.Username] = user
	s.mu.Unlock()
	return nil
}

// Authenticate checks the password and returns the matching user.
func (s *UserStore) Authenticate(username, password string) (User, error) {
	s.mu.RLock()
	user, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}
