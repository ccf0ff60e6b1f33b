package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"fieldtech/internal/domain/entities"
	"fieldtech/internal/usecase/interfaces"
	"fieldtech/pkg/logger"
)

// IAuthUseCase signs the technician in and out of the gateway.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (interfaces.Session, error)
	Logout(ctx context.Context) error
	Current() (interfaces.Session, bool)
}

type AuthUseCase struct {
	gateway  interfaces.IOrderGateway
	notifier INotificationCenter

	mu      sync.RWMutex
	session *interfaces.Session
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(gateway interfaces.IOrderGateway, notifier INotificationCenter) *AuthUseCase {
	if notifier == nil {
		notifier = NewNotificationCenter(0, nil)
	}
	return &AuthUseCase{gateway: gateway, notifier: notifier}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (interfaces.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		err := fmt.Errorf("%w: email and password are required", ErrInvalidInput)
		u.notifier.Push(entities.NotificationWarning, "Email and password are required")
		return interfaces.Session{}, err
	}

	s, err := u.gateway.Login(ctx, email, password)
	if err != nil {
		failed := operationFailed("login", "could not sign in", err)
		u.notifier.Push(entities.NotificationError, notificationMessage(failed))
		logger.Warn(ctx, "login failed", "email", email, "error", err)
		return interfaces.Session{}, failed
	}

	u.mu.Lock()
	u.session = &s
	u.mu.Unlock()

	logger.Info(ctx, "technician signed in", "user_id", s.User.ID)
	return s, nil
}

func (u *AuthUseCase) Logout(ctx context.Context) error {
	err := u.gateway.Logout(ctx)

	u.mu.Lock()
	u.session = nil
	u.mu.Unlock()

	if err != nil {
		failed := operationFailed("logout", "could not sign out", err)
		u.notifier.Push(entities.NotificationError, notificationMessage(failed))
		return failed
	}
	return nil
}

func (u *AuthUseCase) Current() (interfaces.Session, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.session == nil {
		return interfaces.Session{}, false
	}
	return *u.session, true
}
