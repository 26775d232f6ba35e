package service

import (
	"context"
	"fmt"
	"sync"

	"go-grocer-tab/internal/gateway"
	"go-grocer-tab/internal/model"

	"github.com/sirupsen/logrus"
)

// AuthService performs the mock login: a plaintext credential match against
// the backend's user list. The session is a single in-memory flag, lost when
// the process exits. This mirrors the original system and is explicitly not
// a real auth boundary.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.User, error)
	CurrentUser() (*model.User, bool)
	Logout()
}

type authService struct {
	gw  *gateway.Gateway
	log *logrus.Entry

	mu      sync.Mutex
	current *model.User
}

func NewAuthService(gw *gateway.Gateway) AuthService {
	return &authService{
		gw:  gw,
		log: logrus.WithField("component", "auth"),
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	users, err := s.gw.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	for i := range users {
		u := users[i]
		if u.Username == username && u.CheckPassword(password) {
			s.mu.Lock()
			s.current = &u
			s.mu.Unlock()
			s.log.WithField("username", u.Username).Info("user logged in")
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *authService) CurrentUser() (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, false
	}
	u := *s.current
	return &u, true
}

func (s *authService) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}
