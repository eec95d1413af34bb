package lands

import (
	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// GET /api/case/:caseId/lands
func (h *Handlers) GetLandsByCaseID(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "獲取土地資料失敗", fiber.StatusBadRequest, err)
	}
	ls, err := h.Service.ListByCase(c.Context(), caseID)
	if err != nil {
		return response.Error(c, "獲取土地資料失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, ls)
}

// GET /api/case/:caseId/lands/summary — read-time area totals for the list.
func (h *Handlers) GetLandSummary(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "獲取土地資料失敗", fiber.StatusBadRequest, err)
	}
	m2, ping, err := h.Service.Summary(c.Context(), caseID)
	if err != nil {
		return response.Error(c, "獲取土地資料失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, fiber.Map{"totalArea": m2, "totalPing": ping})
}

// POST /api/case/:caseId/lands
func (h *Handlers) CreateLand(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "創建土地資料失敗", fiber.StatusBadRequest, err)
	}
	var l models.Land
	if err := c.BodyParser(&l); err != nil {
		return response.Error(c, "創建土地資料失敗", fiber.StatusBadRequest, err)
	}
	if l.LandNumber == "" {
		return response.Error(c, "請輸入地號", fiber.StatusBadRequest, nil)
	}
	l.CaseID = caseID
	if err := h.Service.Create(c.Context(), &l); err != nil {
		return response.Error(c, "創建土地資料失敗", fiber.StatusBadRequest, err)
	}
	return response.Created(c, l)
}

// PUT /api/lands/:landId
func (h *Handlers) UpdateLand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("landId"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	var l models.Land
	if err := c.BodyParser(&l); err != nil {
		return response.Error(c, "更新土地資料失敗", fiber.StatusBadRequest, err)
	}
	updated, err := h.Service.Update(c.Context(), id, &l)
	if err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "更新土地資料失敗", fiber.StatusBadRequest, err)
	}
	return response.JSON(c, updated)
}

// DELETE /api/lands/:landId
func (h *Handlers) DeleteLand(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("landId"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "刪除土地資料失敗", fiber.StatusInternalServerError, err)
	}
	return response.Message(c, "土地資料已成功刪除")
}
