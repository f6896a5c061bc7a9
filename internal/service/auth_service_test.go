package service

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"quicknotes-server/internal/apperr"
	"quicknotes-server/internal/domain"
	"quicknotes-server/pkg/hash"
	"quicknotes-server/pkg/jwt"
)

type mockUserRepository struct {
	users  map[uint]*domain.User
	nextID uint
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:  make(map[uint]*domain.User),
		nextID: 1,
	}
}

func (m *mockUserRepository) Create(user *domain.User) error {
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) FindByEmail(email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(id uint) (*domain.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, nil
}

func (m *mockUserRepository) EmailExists(email string) (bool, error) {
	user, _ := m.FindByEmail(email)
	return user != nil, nil
}

const testSecret = "test-secret-key-32-characters!"

func newTestAuthService(repo *mockUserRepository) *AuthService {
	return NewAuthService(repo, testSecret, 1*time.Hour, 7*24*time.Hour)
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	var apiErr *apperr.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected apperr.Error, got %v", err)
	}
	if apiErr.Status != want {
		t.Errorf("status = %d, want %d", apiErr.Status, want)
	}
}

func TestAuthService_Register(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestAuthService(repo)

	resp, err := service.Register(&domain.RegisterRequest{
		Email:    "new@example.com",
		Password: "Password123!",
		Name:     "New User",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if resp.User.ID == 0 {
		t.Error("expected user id to be assigned")
	}
	if resp.User.Email != "new@example.com" || resp.User.Name != "New User" {
		t.Errorf("unexpected public user fields: %+v", resp.User)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}

	stored := repo.users[resp.User.ID]
	if stored.Password == "Password123!" {
		t.Error("password stored in plain text")
	}
	if err := hash.Compare(stored.Password, "Password123!"); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestAuthService(repo)

	req := &domain.RegisterRequest{
		Email:    "taken@example.com",
		Password: "Password123!",
		Name:     "First",
	}

	if _, err := service.Register(req); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := service.Register(req)
	if err == nil {
		t.Fatal("second Register() expected error but got none")
	}
	assertStatus(t, err, http.StatusConflict)
}

func TestAuthService_Login(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestAuthService(repo)

	registered, err := service.Register(&domain.RegisterRequest{
		Email:    "login@example.com",
		Password: "Password123!",
		Name:     "Login User",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name       string
		req        *domain.LoginRequest
		wantStatus int
	}{
		{
			name: "correct credentials",
			req: &domain.LoginRequest{
				Email:    "login@example.com",
				Password: "Password123!",
			},
		},
		{
			name: "wrong password",
			req: &domain.LoginRequest{
				Email:    "login@example.com",
				Password: "WrongPassword!",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			req: &domain.LoginRequest{
				Email:    "nobody@example.com",
				Password: "Password123!",
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.Login(tt.req)

			if tt.wantStatus != 0 {
				if err == nil {
					t.Fatal("Login() expected error but got none")
				}
				assertStatus(t, err, tt.wantStatus)
				return
			}

			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}

			claims, err := jwt.ValidateToken(resp.AccessToken, testSecret)
			if err != nil {
				t.Fatalf("access token does not validate: %v", err)
			}
			if claims.UserID != registered.User.ID {
				t.Errorf("claim id = %d, want %d", claims.UserID, registered.User.ID)
			}
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	repo := newMockUserRepository()
	service := newTestAuthService(repo)

	registered, err := service.Register(&domain.RegisterRequest{
		Email:    "refresh@example.com",
		Password: "Password123!",
		Name:     "Refresh User",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("valid refresh token", func(t *testing.T) {
		resp, err := service.Refresh(&domain.RefreshTokenRequest{
			RefreshToken: registered.RefreshToken,
		})
		if err != nil {
			t.Fatalf("Refresh() error = %v", err)
		}

		if resp.AccessToken == registered.AccessToken {
			t.Error("expected a fresh access token")
		}
		if resp.RefreshToken == registered.RefreshToken {
			t.Error("expected a fresh refresh token")
		}
		if resp.User.ID != registered.User.ID {
			t.Errorf("user id = %d, want %d", resp.User.ID, registered.User.ID)
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := service.Refresh(&domain.RefreshTokenRequest{
			RefreshToken: registered.RefreshToken + "x",
		})
		if err == nil {
			t.Fatal("Refresh() expected error but got none")
		}
		assertStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, _ := jwt.GenerateToken(registered.User.ID, -1*time.Hour, testSecret)
		_, err := service.Refresh(&domain.RefreshTokenRequest{RefreshToken: expired})
		if err == nil {
			t.Fatal("Refresh() expected error but got none")
		}
		assertStatus(t, err, http.StatusUnauthorized)
	})

	t.Run("deleted user", func(t *testing.T) {
		delete(repo.users, registered.User.ID)
		_, err := service.Refresh(&domain.RefreshTokenRequest{
			RefreshToken: registered.RefreshToken,
		})
		if err == nil {
			t.Fatal("Refresh() expected error but got none")
		}
		assertStatus(t, err, http.StatusNotFound)
	})
}
