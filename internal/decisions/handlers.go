package decisions

import (
	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// GET /api/case/:caseId/finalDecisions
func (h *Handlers) GetFinalDecisionsByCaseID(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "獲取最終判定失敗", fiber.StatusBadRequest, err)
	}
	fs, err := h.Service.ListByCase(c.Context(), caseID)
	if err != nil {
		return response.Error(c, "獲取最終判定失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, fs)
}

// POST /api/case/:caseId/finalDecisions
func (h *Handlers) CreateFinalDecision(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "創建最終判定失敗", fiber.StatusBadRequest, err)
	}
	var f models.FinalDecision
	if err := c.BodyParser(&f); err != nil {
		return response.Error(c, "創建最終判定失敗", fiber.StatusBadRequest, err)
	}
	f.CaseID = caseID
	if err := h.Service.Create(c.Context(), &f); err != nil {
		return response.Error(c, "創建最終判定失敗", fiber.StatusBadRequest, err)
	}
	return response.Created(c, f)
}

// PUT /api/finalDecisions/:finalDecisionId
func (h *Handlers) UpdateFinalDecision(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("finalDecisionId"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	var f models.FinalDecision
	if err := c.BodyParser(&f); err != nil {
		return response.Error(c, "更新最終判定失敗", fiber.StatusBadRequest, err)
	}
	updated, err := h.Service.Update(c.Context(), id, &f)
	if err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case ErrInvalidValue:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "更新最終判定失敗", fiber.StatusBadRequest, err)
		}
	}
	return response.JSON(c, updated)
}

// DELETE /api/finalDecisions/:finalDecisionId
func (h *Handlers) DeleteFinalDecision(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("finalDecisionId"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "刪除最終判定失敗", fiber.StatusInternalServerError, err)
	}
	return response.Message(c, "最終判定已成功刪除")
}
