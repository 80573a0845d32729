package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	repo "github.com/devsenior/property-service/internal/domain/repository"
)

var (
	// ErrAuthentication covers both a wrong password on login and a duplicate
	// email on registration; callers get the same failure kind either way.
	ErrAuthentication = errors.New("authentication failed")
	ErrUserNotFound   = errors.New("user not found")
)

// AuthService owns registration and login. Passwords are compared with plain
// string equality and the login token is a bare random string nothing else
// ever checks; both kept on purpose for compatibility with the legacy API.
type AuthService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewAuthService(r repo.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, Logger: logger}
}

// Login authenticates by email and returns a fresh opaque token. An unknown
// email and a wrong password fail differently: the former names the email,
// the latter stays deliberately vague.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w with email %s", ErrUserNotFound, req.Email)
		}
		return nil, err
	}

	if u.Password != req.Password {
		return nil, fmt.Errorf("%w: invalid credentials", ErrAuthentication)
	}

	if s.Logger != nil {
		s.Logger.WithField("email", u.Email).Info("user authenticated")
	}

	return &LoginResponse{
		Token:    uuid.NewString(),
		Email:    u.Email,
		FullName: u.FullName,
	}, nil
}

// Register creates a user unless the email is already taken. A duplicate
// raises the authentication error, not a separate conflict kind.
func (s *AuthService) Register(ctx context.Context, in UserDTO) (*UserDTO, error) {
	taken, err := s.Repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: email %s already registered", ErrAuthentication, in.Email)
	}

	u := userFromDTO(in)
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"id": u.ID, "email": u.Email}).Info("user registered")
	}

	out := toUserDTO(u)
	return &out, nil
}
