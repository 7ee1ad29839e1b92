package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/etnz/workledger/storage"
	"github.com/google/go-cmp/cmp"
)

var t0 = time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

// newTestAuth returns an authenticator without delay, and a handle on its
// clock.
func newTestAuth(secret string) (*Authenticator, *storage.Memory, *time.Time) {
	mem := storage.NewMemory()
	now := t0
	a := New(mem, secret, WithDelay(0), WithClock(func() time.Time { return now }))
	return a, mem, &now
}

func TestLogin(t *testing.T) {
	testCases := []struct {
		name      string
		email     string
		password  string
		wantUser  *User
		wantAdmin bool
	}{
		{"admin", "admin@workledger.com", "admin123", &User{ID: "1", Email: "admin@workledger.com", Name: "Admin User", Role: RoleAdmin}, true},
		{"user", "user@workledger.com", "user123", &User{ID: "2", Email: "user@workledger.com", Name: "Regular User", Role: RoleUser}, false},
		{"wrong password", "admin@workledger.com", "user123", nil, false},
		{"unknown email", "root@workledger.com", "admin123", nil, false},
		{"case matters", "Admin@workledger.com", "admin123", nil, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, _, _ := newTestAuth("secret")
			res, err := a.Login(context.Background(), tc.email, tc.password)
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if diff := cmp.Diff(tc.wantUser, res.User); diff != "" {
				t.Errorf("Login() user mismatch (-want +got):\n%s", diff)
			}
			if tc.wantUser == nil && (res.Success || res.Error != InvalidCredentials) {
				t.Errorf("Login() = %+v, want a failure with %q", res, InvalidCredentials)
			}

			s, err := a.Current()
			if err != nil {
				t.Fatalf("Current() error = %v", err)
			}
			if s.IsAuthenticated != (tc.wantUser != nil) || s.IsAdmin() != tc.wantAdmin {
				t.Errorf("Current() = %+v, admin %v", s, s.IsAdmin())
			}
		})
	}
}

func TestLogout(t *testing.T) {
	a, mem, _ := newTestAuth("secret")
	if _, err := a.Login(context.Background(), "admin@workledger.com", "admin123"); err != nil {
		t.Fatal(err)
	}
	if err := a.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	data, err := mem.Get(storage.AuthKey)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"user":null,"isAuthenticated":false}`; got != want {
		t.Errorf("persisted session = %s, want %s", got, want)
	}
	if s, _ := a.Current(); s.IsAuthenticated {
		t.Errorf("Current() after Logout() = %+v", s)
	}
}

func TestCurrent_Rejected(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		a, _, now := newTestAuth("secret")
		if _, err := a.Login(context.Background(), "admin@workledger.com", "admin123"); err != nil {
			t.Fatal(err)
		}
		*now = now.Add(SessionTTL + time.Minute)
		if s, err := a.Current(); err != nil || s.IsAuthenticated {
			t.Errorf("Current() = %+v, %v; want signed out", s, err)
		}
	})
	t.Run("other secret", func(t *testing.T) {
		a, mem, _ := newTestAuth("secret")
		if _, err := a.Login(context.Background(), "admin@workledger.com", "admin123"); err != nil {
			t.Fatal(err)
		}
		b := New(mem, "another", WithDelay(0), WithClock(func() time.Time { return t0 }))
		if s, err := b.Current(); err != nil || s.IsAuthenticated {
			t.Errorf("Current() = %+v, %v; want signed out", s, err)
		}
	})
	t.Run("forged role", func(t *testing.T) {
		a, mem, _ := newTestAuth("secret")
		if _, err := a.Login(context.Background(), "user@workledger.com", "user123"); err != nil {
			t.Fatal(err)
		}
		data, _ := mem.Get(storage.AuthKey)
		forged := []byte(strings.Replace(string(data), `"role":"user"`, `"role":"admin"`, 1))
		if err := mem.Put(storage.Entry{Key: storage.AuthKey, Value: forged}); err != nil {
			t.Fatal(err)
		}
		if s, _ := a.Current(); s.IsAdmin() {
			t.Errorf("Current() accepted a forged role")
		}
	})
	t.Run("missing", func(t *testing.T) {
		a, _, _ := newTestAuth("secret")
		if s, err := a.Current(); err != nil || s.IsAuthenticated {
			t.Errorf("Current() = %+v, %v; want signed out", s, err)
		}
	})
}

func TestLogin_Cancelled(t *testing.T) {
	a := New(storage.NewMemory(), "secret", WithDelay(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.Login(ctx, "admin@workledger.com", "admin123"); !errors.Is(err, context.Canceled) {
		t.Errorf("Login() error = %v, want %v", err, context.Canceled)
	}
}
