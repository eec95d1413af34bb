package auth

import (
	"foreclosure-backend/internal/middleware"
	"foreclosure-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	Service *Service
	Rdb     *redis.Client
}

// authedUser is the body returned by register and login:
// { _id, name, email, token, isVerified } (Express parity).
type authedUser struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Token      string `json:"token"`
	IsVerified bool   `json:"isVerified"`
}

// POST /api/users/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var in RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "註冊失敗", fiber.StatusBadRequest, err)
	}
	u, err := h.Service.Register(c.Context(), in)
	if err != nil {
		switch err {
		case ErrUserExists, ErrEmailPasswordRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "註冊失敗", fiber.StatusInternalServerError, err)
		}
	}
	token, err := middleware.IssueToken(c.Context(), h.Rdb, middleware.SessionUser{
		UserID:     u.ID.String(),
		Name:       u.Name,
		Email:      u.Email,
		IsVerified: u.IsVerified,
	})
	if err != nil {
		return response.Error(c, "註冊失敗", fiber.StatusInternalServerError, err)
	}
	return c.Status(fiber.StatusCreated).JSON(authedUser{
		ID: u.ID.String(), Name: u.Name, Email: u.Email, Token: token, IsVerified: u.IsVerified,
	})
}

// POST /api/users/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var in LoginInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "登入失敗", fiber.StatusBadRequest, err)
	}
	u, err := h.Service.Login(c.Context(), in)
	if err != nil {
		switch err {
		case ErrEmailPasswordRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		case ErrInvalidCredentials:
			return response.Error(c, err.Error(), fiber.StatusUnauthorized, nil)
		default:
			return response.Error(c, "登入失敗", fiber.StatusInternalServerError, err)
		}
	}
	token, err := middleware.IssueToken(c.Context(), h.Rdb, middleware.SessionUser{
		UserID:     u.ID.String(),
		Name:       u.Name,
		Email:      u.Email,
		IsVerified: u.IsVerified,
	})
	if err != nil {
		return response.Error(c, "登入失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, authedUser{
		ID: u.ID.String(), Name: u.Name, Email: u.Email, Token: token, IsVerified: u.IsVerified,
	})
}

// POST /api/users/verify-email
func (h *Handlers) VerifyEmail(c *fiber.Ctx) error {
	var in struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "驗證失敗", fiber.StatusBadRequest, err)
	}
	u, err := h.Service.VerifyEmail(c.Context(), in.Email, in.Code)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case ErrInvalidCode, ErrCodeExpired, ErrAlreadyVerified:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "驗證失敗", fiber.StatusInternalServerError, err)
		}
	}
	// Keep the live session in step with the flipped flag.
	if u := middleware.GetUser(c); u != nil {
		u.IsVerified = true
		_ = middleware.RefreshSession(c.Context(), h.Rdb, c, *u)
	}
	return response.JSON(c, fiber.Map{"message": "電子郵件驗證成功", "isVerified": u.IsVerified})
}

// POST /api/users/resend-verification
func (h *Handlers) ResendVerification(c *fiber.Ctx) error {
	var in struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "重發驗證碼失敗", fiber.StatusBadRequest, err)
	}
	if err := h.Service.ResendVerification(c.Context(), in.Email); err != nil {
		switch err {
		case ErrUserNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case ErrAlreadyVerified:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "重發驗證碼失敗", fiber.StatusInternalServerError, err)
		}
	}
	return response.Message(c, "驗證碼已重新寄出")
}

// GET /api/users/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	u := middleware.GetUser(c)
	if u == nil {
		return response.Unauthorized(c, "未授權的訪問")
	}
	return response.JSON(c, u)
}

// DELETE /api/users/logout
func (h *Handlers) Logout(c *fiber.Ctx) error {
	if err := middleware.RevokeToken(c.Context(), h.Rdb, c); err != nil {
		return response.Error(c, "登出失敗", fiber.StatusInternalServerError, err)
	}
	return response.Message(c, "已登出")
}
