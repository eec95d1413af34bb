package actionresults

import (
	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// GET /api/case/:caseId/actionResults
func (h *Handlers) GetActionResultsByCaseID(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "獲取執行結果失敗", fiber.StatusBadRequest, err)
	}
	rs, err := h.Service.ListByCase(c.Context(), caseID)
	if err != nil {
		return response.Error(c, "獲取執行結果失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, rs)
}

// POST /api/case/:caseId/actionResults
func (h *Handlers) CreateActionResult(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "創建執行結果失敗", fiber.StatusBadRequest, err)
	}
	var r models.ActionResult
	if err := c.BodyParser(&r); err != nil {
		return response.Error(c, "創建執行結果失敗", fiber.StatusBadRequest, err)
	}
	r.CaseID = caseID
	if err := h.Service.Create(c.Context(), &r); err != nil {
		return response.Error(c, "創建執行結果失敗", fiber.StatusBadRequest, err)
	}
	return response.Created(c, r)
}

// PUT /api/actionResults/:actionResultId
func (h *Handlers) UpdateActionResult(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("actionResultId"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	var r models.ActionResult
	if err := c.BodyParser(&r); err != nil {
		return response.Error(c, "更新執行結果失敗", fiber.StatusBadRequest, err)
	}
	updated, err := h.Service.Update(c.Context(), id, &r)
	if err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case ErrInvalidValue:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "更新執行結果失敗", fiber.StatusBadRequest, err)
		}
	}
	return response.JSON(c, updated)
}

// DELETE /api/actionResults/:actionResultId
func (h *Handlers) DeleteActionResult(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("actionResultId"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "刪除執行結果失敗", fiber.StatusInternalServerError, err)
	}
	return response.Message(c, "執行結果已成功刪除")
}
