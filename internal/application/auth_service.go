package application

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/careertrack/internal/domain/entity"
	repo "github.com/oksasatya/careertrack/internal/domain/repository"
	"github.com/oksasatya/careertrack/pkg/helpers"
	"github.com/oksasatya/careertrack/pkg/mailer"
)

// AuthService issues the bearer tokens consumed by the auth middleware and
// handles account lifecycle: register, login, password reset, profile.
type AuthService struct {
	Users         repo.UserRepository
	JWT           *helpers.JWTManager
	Redis         *redis.Client
	Publisher     *helpers.RabbitPublisher
	Logger        *logrus.Logger
	ResetTokenTTL time.Duration
	ResetURL      string
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, pub *helpers.RabbitPublisher, logger *logrus.Logger, resetTTL time.Duration, resetURL string) *AuthService {
	return &AuthService{
		Users:         users,
		JWT:           jwt,
		Redis:         rdb,
		Publisher:     pub,
		Logger:        logger,
		ResetTokenTTL: resetTTL,
		ResetURL:      resetURL,
	}
}

func resetKey(token string) string { return "pwd:reset:token:" + token }

type AuthResult struct {
	Token   string       `json:"token"`
	Expires time.Time    `json:"expires_at"`
	User    *entity.User `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, invalidf("email is required")
	}
	if len(password) < 8 {
		return nil, invalidf("password must be at least 8 characters")
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Password: hash, Name: strings.TrimSpace(name)}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.issue(u)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, err
	}
	return &AuthResult{Token: token, Expires: exp, User: u}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfileInput carries partial profile changes; nil fields are left
// untouched, so an explicit "" clears the value.
type UpdateProfileInput struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.AvatarURL != nil {
		u.AvatarURL = *in.AvatarURL
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// RequestPasswordReset stores a single-use opaque token in Redis and queues
// the reset email. It reports success even for unknown addresses so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := s.Users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil || u == nil {
		return nil
	}
	if s.Redis == nil {
		return fmt.Errorf("password reset unavailable: redis not configured")
	}

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return err
	}
	token := base64.RawURLEncoding.EncodeToString(b)

	if err := s.Redis.Set(ctx, resetKey(token), u.ID, s.ResetTokenTTL).Err(); err != nil {
		return err
	}

	link := s.ResetURL + "?token=" + token
	job := mailer.EmailJob{
		To:      u.Email,
		Subject: "Reset your password",
		Text:    "A password reset was requested for your account. Open " + link + " to choose a new password. The link expires in " + s.ResetTokenTTL.String() + ". If this wasn't you, ignore this email.",
	}
	if s.Publisher == nil {
		if s.Logger != nil {
			s.Logger.WithField("email", u.Email).Warn("email queue not configured, reset email dropped")
		}
		return nil
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("publish reset email failed")
		}
		return err
	}
	return nil
}

// ConfirmPasswordReset consumes the token and installs the new password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return invalidf("password must be at least 8 characters")
	}
	if s.Redis == nil {
		return fmt.Errorf("password reset unavailable: redis not configured")
	}
	userID, err := s.Redis.Get(ctx, resetKey(token)).Result()
	if err == redis.Nil || userID == "" {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}
	// Single use: drop the token once consumed.
	_ = s.Redis.Del(ctx, resetKey(token)).Err()
	return nil
}
