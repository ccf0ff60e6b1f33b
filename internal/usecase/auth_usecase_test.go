package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldtech/internal/usecase/interfaces"
	mock_interfaces "fieldtech/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		if _, err := uc.Login(context.Background(), " ", "x"); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("gateway rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIOrderGateway(ctrl)
		uc := NewAuthUseCase(gw, nil)

		gw.EXPECT().Login(gomock.Any(), "tech@example.com", "bad").
			Return(interfaces.Session{}, &interfaces.GatewayError{StatusCode: 401, Message: "Credenciales inválidas"})

		_, err := uc.Login(context.Background(), "tech@example.com", "bad")
		var failed *OperationFailedError
		if !errors.As(err, &failed) || failed.Message != "Credenciales inválidas" {
			t.Fatalf("expected gateway message, got %v", err)
		}
		if _, ok := uc.Current(); ok {
			t.Fatalf("no session expected")
		}
	})

	t.Run("success then logout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIOrderGateway(ctrl)
		uc := NewAuthUseCase(gw, nil)

		session := interfaces.Session{Token: "tok", User: interfaces.SessionUser{ID: 3, Email: "tech@example.com"}}
		gw.EXPECT().Login(gomock.Any(), "tech@example.com", "secret").Return(session, nil)
		gw.EXPECT().Logout(gomock.Any()).Return(nil)

		got, err := uc.Login(context.Background(), " tech@example.com ", "secret")
		if err != nil || got.Token != "tok" {
			t.Fatalf("unexpected result %+v, %v", got, err)
		}
		if cur, ok := uc.Current(); !ok || cur.User.ID != 3 {
			t.Fatalf("expected current session, got %+v", cur)
		}
		if err := uc.Logout(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := uc.Current(); ok {
			t.Fatalf("session must be gone after logout")
		}
	})

	t.Run("logout failure still drops the local session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIOrderGateway(ctrl)
		uc := NewAuthUseCase(gw, nil)
		uc.session = &interfaces.Session{Token: "tok"}

		gw.EXPECT().Logout(gomock.Any()).Return(&interfaces.GatewayError{StatusCode: 500})

		if err := uc.Logout(context.Background()); !errors.Is(err, ErrOperationFailed) {
			t.Fatalf("expected ErrOperationFailed, got %v", err)
		}
		if _, ok := uc.Current(); ok {
			t.Fatalf("session must be gone")
		}
	})
}
