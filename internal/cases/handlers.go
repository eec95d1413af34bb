package cases

import (
	"foreclosure-backend/internal/middleware"
	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// GET /api/cases
func (h *Handlers) GetAllCases(c *fiber.Ctx) error {
	cs, err := h.Service.GetAll(c.Context())
	if err != nil {
		return response.Error(c, "獲取案件失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, cs)
}

// GET /api/cases/:id
func (h *Handlers) GetCase(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	kase, err := h.Service.Get(c.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "獲取案件失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, kase)
}

// POST /api/cases
func (h *Handlers) CreateCase(c *fiber.Ctx) error {
	var kase models.Case
	if err := c.BodyParser(&kase); err != nil {
		return response.Error(c, "創建案件失敗", fiber.StatusBadRequest, err)
	}
	if kase.Title == "" || kase.CaseNumber == "" {
		return response.Error(c, "請輸入標題", fiber.StatusBadRequest, nil)
	}
	if u := middleware.GetUser(c); u != nil {
		if uid, err := uuid.Parse(u.UserID); err == nil {
			kase.CreatedBy = &uid
		}
	}
	if err := h.Service.Create(c.Context(), &kase); err != nil {
		return response.Error(c, "創建案件失敗", fiber.StatusBadRequest, err)
	}
	return response.Created(c, kase)
}

// PUT /api/cases/:id
func (h *Handlers) UpdateCase(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	var kase models.Case
	if err := c.BodyParser(&kase); err != nil {
		return response.Error(c, "更新案件失敗", fiber.StatusBadRequest, err)
	}
	updated, err := h.Service.Update(c.Context(), id, &kase)
	if err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "更新案件失敗", fiber.StatusBadRequest, err)
	}
	return response.JSON(c, updated)
}

// DELETE /api/cases/:id
func (h *Handlers) DeleteCase(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "刪除案件失敗", fiber.StatusInternalServerError, err)
	}
	return response.Message(c, "案件已成功刪除")
}
