package auth

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"foreclosure-backend/internal/emails"
	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/pkg/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service handles registration, login and email verification.
type Service struct {
	DB     *gorm.DB
	Mailer emails.Sender
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

const codeTTL = 30 * time.Minute

// generateVerificationCode returns a 6-digit code (userController.js).
func generateVerificationCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// Register creates a user with a hashed password and a pending verification
// code, and mails the code if a mailer is configured.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, ErrEmailPasswordRequired
	}
	if !validation.IsValidEmail(in.Email) || !validation.IsValidPassword(in.Password) {
		return nil, ErrEmailPasswordRequired
	}

	var existing models.User
	err := s.DB.WithContext(ctx).Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	code := generateVerificationCode()
	expiry := time.Now().Add(codeTTL)
	u := &models.User{
		Name:                   in.Name,
		Email:                  in.Email,
		PasswordHash:           string(hash),
		VerificationCode:       code,
		VerificationCodeExpiry: &expiry,
	}
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}

	if s.Mailer != nil {
		// Delivery failure must not fail the registration (Express parity:
		// the send was commented out / best-effort).
		_ = s.Mailer.SendVerificationCode(ctx, u.Email, u.Name, code)
	}
	return u, nil
}

// Login verifies email + password.
func (s *Service) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, ErrEmailPasswordRequired
	}
	var u models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", in.Email).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// VerifyEmail checks the code and flips isVerified.
func (s *Service) VerifyEmail(ctx context.Context, email, code string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.IsVerified {
		return nil, ErrAlreadyVerified
	}
	if u.VerificationCode == "" || u.VerificationCode != code {
		return nil, ErrInvalidCode
	}
	if u.VerificationCodeExpiry != nil && time.Now().After(*u.VerificationCodeExpiry) {
		return nil, ErrCodeExpired
	}
	updates := map[string]interface{}{
		"is_verified":              true,
		"verification_code":        "",
		"verification_code_expiry": nil,
	}
	if err := s.DB.WithContext(ctx).Model(&u).Updates(updates).Error; err != nil {
		return nil, err
	}
	u.IsVerified = true
	return &u, nil
}

// ResendVerification issues a fresh code for an unverified user.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	var u models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrUserNotFound
		}
		return err
	}
	if u.IsVerified {
		return ErrAlreadyVerified
	}
	code := generateVerificationCode()
	expiry := time.Now().Add(codeTTL)
	updates := map[string]interface{}{
		"verification_code":        code,
		"verification_code_expiry": expiry,
	}
	if err := s.DB.WithContext(ctx).Model(&u).Updates(updates).Error; err != nil {
		return err
	}
	if s.Mailer != nil {
		_ = s.Mailer.SendVerificationCode(ctx, u.Email, u.Name, code)
	}
	return nil
}
