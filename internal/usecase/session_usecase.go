package usecase

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"fieldtech/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// GatewayUser is an account allowed to sign in to the gateway.
type GatewayUser struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Role     string
}

// SessionClaims is the JWT payload issued at login.
type SessionClaims struct {
	UserID int64  `json:"id_user"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type ISessionUseCase interface {
	Login(email, password string) (interfaces.Session, time.Time, error)
	Verify(token string) (interfaces.SessionUser, error)
}

type SessionUseCase struct {
	users  map[string]GatewayUser
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(users []GatewayUser, secret string, ttl time.Duration, now func() time.Time) *SessionUseCase {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	if now == nil {
		now = time.Now
	}
	byEmail := make(map[string]GatewayUser, len(users))
	for _, u := range users {
		byEmail[strings.ToLower(strings.TrimSpace(u.Email))] = u
	}
	return &SessionUseCase{users: byEmail, secret: []byte(secret), ttl: ttl, now: now}
}

// Login checks the credentials and issues a signed HS256 token.
func (u *SessionUseCase) Login(email, password string) (interfaces.Session, time.Time, error) {
	user, ok := u.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok || subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return interfaces.Session{}, time.Time{}, ErrInvalidCredentials
	}

	now := u.now()
	expiresAt := now.Add(u.ttl)
	claims := SessionClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return interfaces.Session{}, time.Time{}, err
	}

	return interfaces.Session{
		Token: token,
		User:  interfaces.SessionUser{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	}, expiresAt, nil
}

func (u *SessionUseCase) Verify(token string) (interfaces.SessionUser, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return u.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(u.now),
	)
	if err != nil || !parsed.Valid {
		return interfaces.SessionUser{}, ErrInvalidToken
	}
	return interfaces.SessionUser{ID: claims.UserID, Name: claims.Name, Email: claims.Email, Role: claims.Role}, nil
}
