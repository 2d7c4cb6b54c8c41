package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/errors"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/queue"
	repository "github.com/aaravmahajanofficial/online-bookstore-platform/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)
	ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error
}

type userService struct {
	repo        repository.UserRepository
	rateLimiter repository.RateLimitRepository
	publisher   queue.Publisher
	jwtKey      []byte
	frontendURL string
}

func NewUserService(repo repository.UserRepository, rateLimiter repository.RateLimitRepository, publisher queue.Publisher, jwtKey []byte, frontendURL string) UserService {
	return &userService{
		repo:        repo,
		rateLimiter: rateLimiter,
		publisher:   publisher,
		jwtKey:      jwtKey,
		frontendURL: frontendURL,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {

	existingUser, _ := s.repo.GetUserByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, errors.DuplicateEntryError("Email already registered")
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	// The welcome mail is best effort, registration already succeeded.
	msg := &models.EmailMessage{
		Type:  models.EmailTypeWelcome,
		Email: user.Email,
		Name:  user.Name,
	}

	if err := s.publisher.Publish(ctx, msg); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to enqueue welcome email",
			slog.String("email", user.Email), slog.Any("error", err))
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	// check rate limit
	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, req.Email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	// Retrieve the user from the DB and compare the passwords
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: remaining,
		}, nil
	}

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// Generate Token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(time.Until(claims.ExpiresAt.Time).Seconds()),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {

	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("User not found").WithError(err)
	}

	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {

	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("User not found").WithError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Mobile != nil {
		user.Mobile = *req.Mobile
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to update profile").WithError(err)
	}

	return user, nil
}

// ForgotPassword enqueues a reset mail carrying a short-lived token link.
// The account's existence is reported to the caller, matching the public
// storefront behaviour.
func (s *userService) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error {

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return errors.NotFoundError("No account found for this email").WithError(err)
	}

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return errors.InternalError("Failed to generate reset token").WithError(err)
	}

	msg := &models.EmailMessage{
		Type:  models.EmailTypeResetPassword,
		Email: user.Email,
		Name:  user.Name,
		Link:  fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, tokenString),
	}

	// Unlike the welcome mail, the reset mail is the whole point of this
	// operation, so a failed publish is an error.
	if err := s.publisher.Publish(ctx, msg); err != nil {
		return errors.ThirdPartyError("Failed to enqueue reset email").WithError(err)
	}

	return nil
}
