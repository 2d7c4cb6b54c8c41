package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/errors"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/models"
	service "github.com/aaravmahajanofficial/online-bookstore-platform/internal/services"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

// Register godoc
//	@Summary		Register a new user
//	@Description	Creates a new account and queues a welcome email.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	models.User				"Successfully registered"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Email already registered"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/users/register [post]
func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")
			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Error("User registration failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User registered", slog.String("userId", user.ID.String()))
		response.Success(w, http.StatusCreated, user)
	}
}

// Login godoc
//	@Summary		Log in
//	@Description	Exchanges credentials for a JWT. Login attempts are rate limited per email.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Login credentials"
//	@Success		200			{object}	models.LoginResponse	"Token issued"
//	@Failure		401			{object}	models.LoginResponse	"Invalid credentials"
//	@Failure		429			{object}	models.LoginResponse	"Too many attempts"
//	@Router			/users/login [post]
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
			}

			logger.Warn("Login rejected", slog.String("email", req.Email), slog.Int("status", status))
			response.WriteJson(w, status, resp)
			return
		}

		logger.Info("User logged in", slog.String("email", req.Email))
		response.Success(w, http.StatusOK, resp)
	}
}

// Profile godoc
//	@Summary		Get the authenticated user's profile
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	models.User				"Profile"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"User not found"
//	@Security		BearerAuth
//	@Router			/users/profile [get]
func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized profile access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("User not found", slog.String("userId", claims.UserID.String()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// UpdateProfile godoc
//	@Summary		Update the authenticated user's profile
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		models.UpdateProfileRequest	true	"Fields to update"
//	@Success		200		{object}	models.User					"Updated profile"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Security		BearerAuth
//	@Router			/users/profile [put]
func (h *UserHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := r.Context().Value(middleware.UserContextKey).(*models.Claims)
		if !ok {
			logger.Warn("Unauthorized profile update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.UpdateProfileRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid profile update input")
			return
		}

		user, err := h.userService.UpdateProfile(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to update profile", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Profile updated", slog.String("userId", user.ID.String()))
		response.Success(w, http.StatusOK, user)
	}
}

// ForgotPassword godoc
//	@Summary		Request a password reset email
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ForgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	map[string]string				"Reset email queued"
//	@Failure		404		{object}	response.ErrorResponse			"No account for this email"
//	@Router			/users/forgot-password [post]
func (h *UserHandler) ForgotPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ForgotPasswordRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid forgot password input")
			return
		}

		if err := h.userService.ForgotPassword(r.Context(), &req); err != nil {
			logger.Warn("Forgot password request failed", slog.String("email", req.Email), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Password reset email queued", slog.String("email", req.Email))
		response.Success(w, http.StatusOK, map[string]string{"message": "Password reset email sent"})
	}
}
