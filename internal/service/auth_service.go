package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/config"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/dto"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"
	"github.com/nomanchughtai306/tuck-shop-manager/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Mailer is the outbound e-mail dependency; nil disables sending.
type Mailer interface {
	Send(to, subject, body string) error
}

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo   repository.UserRepository
	cfg    *config.Config
	mailer Mailer
}

func NewAuthService(repo repository.UserRepository, cfg *config.Config, mailer Mailer) AuthService {
	return &authService{repo: repo, cfg: cfg, mailer: mailer}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateIdentity
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Active:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Welcome mail is best effort — a broken SMTP relay must never fail
	// registration.
	if s.mailer != nil {
		go func(to, username string) {
			body := fmt.Sprintf("Hello %s,\n\nYour %s account is ready. Happy selling!\n", username, s.cfg.ShopName)
			if err := s.mailer.Send(to, "Welcome to "+s.cfg.ShopName, body); err != nil {
				log.Warn().Err(err).Str("email", to).Msg("welcome mail failed")
			}
		}(user.Email, user.Username)
	}

	return &dto.UserResponse{
		ID: user.ID, Username: user.Username, Email: user.Email, Active: user.Active,
	}, nil
}

// Login matches the identity against username OR email. The active flag is
// checked here only; tokens already in the wild stay valid until expiry.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByIdentity(ctx, req.Identity)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ErrAccountDisabled
	}

	token, err := generateToken(s.cfg, user.ID, user.Username, "user")
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User: dto.UserResponse{
			ID: user.ID, Username: user.Username, Email: user.Email, Active: user.Active,
		},
	}, nil
}

// generateToken signs an HS256 bearer token. Scope is "user" for shop owners
// and "admin" for the console credential pair — the two are never
// interchangeable.
func generateToken(cfg *config.Config, userID uint, username, scope string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"scope":    scope,
		"exp":      time.Now().Add(time.Duration(cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}
