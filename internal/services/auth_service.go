package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"homeveda_backend/internal/models"
	"homeveda_backend/internal/repositories"
	"homeveda_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Auth ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUserValidation     = errors.New("user data validation error")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

const minPasswordLength = 6

// Mailer delivers account emails. The default implementation only logs the
// link so local setups work without an SMTP account.
type Mailer interface {
	SendPasswordReset(ctx context.Context, toEmail, resetLink string) error
}

type logMailer struct{}

// NewLogMailer returns a Mailer that writes the reset link to the log.
func NewLogMailer() Mailer {
	return logMailer{}
}

func (logMailer) SendPasswordReset(_ context.Context, toEmail, resetLink string) error {
	utils.LogInfo("password reset link for " + toEmail + ": " + resetLink)
	return nil
}

// --- Auth DTOs ---

type RegisterUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
}

type RegisterAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type UpdateUserDetailsRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// --- AuthService Interface ---
type AuthService interface {
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*models.User, error)
	RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (*models.User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	GetUserDetails(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUserDetails(ctx context.Context, email string, req UpdateUserDetailsRequest) (*models.User, error)
	ChangePassword(ctx context.Context, email string, req ChangePasswordRequest) error
	DeleteUser(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

// --- authService Implementation ---
type authService struct {
	userRepo     repositories.UserRepository
	mailer       Mailer
	resetBaseURL string
}

// NewAuthService creates a new instance of AuthService. resetBaseURL is the
// frontend page the emailed reset token gets appended to.
func NewAuthService(userRepo repositories.UserRepository, mailer Mailer, resetBaseURL string) AuthService {
	return &authService{
		userRepo:     userRepo,
		mailer:       mailer,
		resetBaseURL: resetBaseURL,
	}
}

func validateRegistration(name, email, password string) error {
	if utils.IsEmpty(name) {
		return fmt.Errorf("%w: name cannot be empty", ErrUserValidation)
	}
	if !utils.IsValidEmail(email) {
		return fmt.Errorf("%w: invalid email format", ErrUserValidation)
	}
	if !utils.IsValidPasswordLength(password, minPasswordLength) {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrUserValidation)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *authService) register(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

func (s *authService) RegisterUser(ctx context.Context, req RegisterUserRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateRegistration(req.Name, email, req.Password); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	return s.register(ctx, &models.User{
		Name:      req.Name,
		Email:     email,
		Password:  hashed,
		Address:   req.Address,
		Phone:     req.Phone,
		IsAdmin:   false,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *authService) RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateRegistration(req.Name, email, req.Password); err != nil {
		return nil, err
	}
	if !models.IsValidAdminRole(req.Role) {
		return nil, fmt.Errorf("%w: invalid admin role %q", ErrUserValidation, req.Role)
	}
	if _, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	return s.register(ctx, &models.User{
		Name:      req.Name,
		Email:     email,
		Password:  hashed,
		IsAdmin:   true,
		Role:      req.Role,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user for login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(user.Email, user.IsAdmin, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &LoginResponse{Token: token, User: *user}, nil
}

func (s *authService) GetUserDetails(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user details: %w", err)
	}
	return user, nil
}

func (s *authService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

func (s *authService) UpdateUserDetails(ctx context.Context, email string, req UpdateUserDetailsRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	if req.Name != nil {
		if utils.IsEmpty(*req.Name) {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrUserValidation)
		}
		user.Name = *req.Name
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}

	user.UpdatedAt = timeNow()
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user in repository: %w", err)
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, email string, req ChangePasswordRequest) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user for password change: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if !utils.IsValidPasswordLength(req.NewPassword, minPasswordLength) {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrUserValidation)
	}

	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.UpdatedAt = timeNow()

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}
	return nil
}

func (s *authService) DeleteUser(ctx context.Context, email string) error {
	if err := s.userRepo.DeleteUser(ctx, email); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ForgotPassword issues a short-lived reset token and mails the reset link.
// An unknown email returns ErrUserNotFound so the handler can decide whether
// to disclose it.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user for password reset: %w", err)
	}

	token, err := utils.GenerateResetToken(user.Email)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	expiry := timeNow().Add(utils.ResetTokenTTL)
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry
	user.UpdatedAt = timeNow()

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := s.resetBaseURL + "?token=" + token
	if err := s.mailer.SendPasswordReset(ctx, user.Email, resetLink); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	claims, err := utils.ValidateToken(req.Token)
	if err != nil {
		return ErrInvalidResetToken
	}

	user, err := s.userRepo.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to find user for password reset: %w", err)
	}

	// The token must match the one most recently issued and still be live.
	if user.ResetToken == nil || *user.ResetToken != req.Token {
		return ErrInvalidResetToken
	}
	if user.ResetTokenExpiry == nil || timeNow().After(*user.ResetTokenExpiry) {
		return ErrInvalidResetToken
	}
	if !utils.IsValidPasswordLength(req.NewPassword, minPasswordLength) {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrUserValidation)
	}

	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = nil
	user.ResetTokenExpiry = nil
	user.UpdatedAt = timeNow()

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}
	return nil
}
