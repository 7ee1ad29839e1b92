// Package auth signs users in and out of WorkLedger.
//
// Two fixed accounts are known, an administrator and a regular user. The
// session is persisted in the storage backend under [storage.AuthKey] as the
// signed-in user, a flag, and a signed token that expires after a day.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/etnz/workledger/storage"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// InvalidCredentials is the error message of a failed login.
const InvalidCredentials = "Invalid email or password"

// DefaultDelay is how long Login waits before answering.
const DefaultDelay = 500 * time.Millisecond

// SessionTTL is the lifetime of a session token.
const SessionTTL = 24 * time.Hour

// Role gates the write access of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is a signed-in account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// State is the persisted session.
type State struct {
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	Token           string `json:"token,omitempty"`
}

// IsAdmin reports whether the signed-in user may change data.
func (s State) IsAdmin() bool {
	return s.IsAuthenticated && s.User != nil && s.User.Role == RoleAdmin
}

// Result is the outcome of a login attempt.
type Result struct {
	Success bool
	User    *User
	Error   string
}

type account struct {
	user User
	hash []byte
}

// accounts hashes the known passwords once, on first use.
var accounts = sync.OnceValue(func() map[string]account {
	known := []struct {
		user     User
		password string
	}{
		{User{ID: "1", Email: "admin@workledger.com", Name: "Admin User", Role: RoleAdmin}, "admin123"},
		{User{ID: "2", Email: "user@workledger.com", Name: "Regular User", Role: RoleUser}, "user123"},
	}
	m := make(map[string]account, len(known))
	for _, k := range known {
		hash, err := bcrypt.GenerateFromPassword([]byte(k.password), 8)
		if err != nil {
			panic(err)
		}
		m[k.user.Email] = account{user: k.user, hash: hash}
	}
	return m
})

// Authenticator checks credentials and keeps the session in a backend.
type Authenticator struct {
	backend storage.Backend
	secret  []byte
	delay   time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithDelay sets the time Login waits before answering.
func WithDelay(d time.Duration) Option { return func(a *Authenticator) { a.delay = d } }

// WithLogger sets the logger of the authenticator.
func WithLogger(l *zap.Logger) Option { return func(a *Authenticator) { a.logger = l } }

// WithClock sets the clock used to issue and check session tokens.
func WithClock(now func() time.Time) Option { return func(a *Authenticator) { a.now = now } }

// New returns an Authenticator keeping its session in backend, signing
// tokens with secret.
func New(backend storage.Backend, secret string, opts ...Option) *Authenticator {
	a := &Authenticator{
		backend: backend,
		secret:  []byte(secret),
		delay:   DefaultDelay,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Login checks the credentials and, on success, persists the new session.
//
// A wrong email or password is not an error: the Result reports it. Errors
// are returned when ctx is done before the answer, or when the session cannot
// be saved.
func (a *Authenticator) Login(ctx context.Context, email, password string) (Result, error) {
	timer := time.NewTimer(a.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.C:
	}

	acc, ok := accounts()[email]
	if !ok || bcrypt.CompareHashAndPassword(acc.hash, []byte(password)) != nil {
		a.logger.Info("login failed", zap.String("email", email))
		return Result{Error: InvalidCredentials}, nil
	}

	user := acc.user
	token, err := a.sign(user)
	if err != nil {
		return Result{}, fmt.Errorf("could not sign session: %w", err)
	}
	if err := a.save(State{User: &user, IsAuthenticated: true, Token: token}); err != nil {
		return Result{}, err
	}
	a.logger.Info("login", zap.String("email", email), zap.String("role", string(user.Role)))
	return Result{Success: true, User: &user}, nil
}

// Logout persists a signed out session.
func (a *Authenticator) Logout() error {
	if err := a.save(State{}); err != nil {
		return err
	}
	a.logger.Info("logout")
	return nil
}

// Current returns the persisted session. A missing session, or one whose
// token is invalid or expired, is returned as signed out.
func (a *Authenticator) Current() (State, error) {
	data, err := a.backend.Get(storage.AuthKey)
	if errors.Is(err, storage.ErrNotFound) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("could not read session: %w", err)
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("could not decode session: %w", err)
	}
	if !s.IsAuthenticated || s.User == nil {
		return State{}, nil
	}
	if err := a.verify(s.Token, *s.User); err != nil {
		a.logger.Debug("session rejected", zap.String("email", s.User.Email), zap.Error(err))
		return State{}, nil
	}
	return s, nil
}

func (a *Authenticator) save(s State) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := a.backend.Put(storage.Entry{Key: storage.AuthKey, Value: data}); err != nil {
		a.logger.Error("could not save session", zap.Error(err))
		return fmt.Errorf("could not save session: %w", err)
	}
	return nil
}

func (a *Authenticator) sign(u User) (string, error) {
	now := a.now()
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": string(u.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(SessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// verify checks that token is a valid session token for u.
func (a *Authenticator) verify(token string, u User) error {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now), jwt.WithExpirationRequired())
	if err != nil {
		return err
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return err
	}
	if sub != u.ID || claims["role"] != string(u.Role) {
		return jwt.ErrTokenInvalidClaims
	}
	return nil
}
