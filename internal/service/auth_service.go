package service

import (
	"fmt"
	"time"

	"quicknotes-server/internal/apperr"
	"quicknotes-server/internal/domain"
	"quicknotes-server/internal/repository"
	"quicknotes-server/pkg/hash"
	"quicknotes-server/pkg/jwt"

	"golang.org/x/sync/errgroup"
)

type AuthService struct {
	userRepo   repository.UserRepository
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) Register(req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("user already exists")
	}

	hashedPassword, err := hash.Hash(req.Password)
	if err != nil {
		return nil, apperr.BadRequest(err.Error())
	}

	user := &domain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.respondWithTokens(user)
}

func (s *AuthService) Login(req *domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	if err := hash.Compare(user.Password, req.Password); err != nil {
		return nil, apperr.Unauthorized("invalid password")
	}

	return s.respondWithTokens(user)
}

// Refresh exchanges a valid refresh token for a brand new pair; the old
// access and refresh tokens are both superseded.
func (s *AuthService) Refresh(req *domain.RefreshTokenRequest) (*domain.AuthResponse, error) {
	claims, err := jwt.ValidateToken(req.RefreshToken, s.jwtSecret)
	if err != nil {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	return s.respondWithTokens(user)
}

func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	claims, err := jwt.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims, nil
}

// issueTokens signs the access and refresh tokens concurrently; they
// share the claim set and differ only in expiration.
func (s *AuthService) issueTokens(userID uint) (accessToken, refreshToken string, err error) {
	var g errgroup.Group

	g.Go(func() error {
		var err error
		accessToken, err = jwt.GenerateToken(userID, s.accessTTL, s.jwtSecret)
		return err
	})
	g.Go(func() error {
		var err error
		refreshToken, err = jwt.GenerateToken(userID, s.refreshTTL, s.jwtSecret)
		return err
	})

	if err := g.Wait(); err != nil {
		return "", "", fmt.Errorf("failed to issue tokens: %w", err)
	}
	return accessToken, refreshToken, nil
}

func (s *AuthService) respondWithTokens(user *domain.User) (*domain.AuthResponse, error) {
	accessToken, refreshToken, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{
		User:         user.Public(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
