package auth

import (
	"errors"
	"fmt"

	"github.com/stanislav-shchetinin/security-web/internal/users"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
)

// LoginResponse is returned by both login and register.
type LoginResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Service orchestrates login and registration over the credential store.
type Service struct {
	users  users.Store
	tokens *TokenService
}

func NewService(store users.Store, tokens *TokenService) *Service {
	return &Service{users: store, tokens: tokens}
}

// Login verifies the credentials and issues a token. Unknown username, wrong
// password and deactivated account all fail with the same generic error.
func (s *Service) Login(username, password string) (*LoginResponse, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !u.Active || !CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

// Register creates a new USER account and issues a token. The existence
// checks and the insert run in one transaction; the unique constraints on
// username and email are the backstop against concurrent registrations.
func (s *Service) Register(username, password, email, fullName string) (*LoginResponse, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &users.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		FullName:     fullName,
		Role:         users.RoleUser,
		Active:       true,
	}

	err = s.users.InTx(func(tx users.Store) error {
		taken, err := tx.ExistsByUsername(username)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if taken {
			return ErrUsernameTaken
		}
		taken, err = tx.ExistsByEmail(email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return ErrEmailTaken
		}
		if err := tx.Create(u); err != nil {
			if errors.Is(err, users.ErrDuplicate) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.issue(u)
}

func (s *Service) issue(u *users.User) (*LoginResponse, error) {
	token, err := s.tokens.Generate(u.Username, u.Role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &LoginResponse{
		Token:    token,
		Type:     "Bearer",
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}, nil
}
