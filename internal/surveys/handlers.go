package surveys

import (
	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// GET /api/case/:caseId/surveys
func (h *Handlers) GetSurveysByCaseID(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "獲取調查資料失敗", fiber.StatusBadRequest, err)
	}
	ss, err := h.Service.ListByCase(c.Context(), caseID)
	if err != nil {
		return response.Error(c, "獲取調查資料失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, ss)
}

// POST /api/case/:caseId/surveys
func (h *Handlers) CreateSurvey(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "創建調查資料失敗", fiber.StatusBadRequest, err)
	}
	var sv models.Survey
	if err := c.BodyParser(&sv); err != nil {
		return response.Error(c, "創建調查資料失敗", fiber.StatusBadRequest, err)
	}
	sv.CaseID = caseID
	if err := h.Service.Create(c.Context(), &sv); err != nil {
		return response.Error(c, "創建調查資料失敗", fiber.StatusBadRequest, err)
	}
	return response.Created(c, sv)
}

// PUT /api/surveys/:surveyId
func (h *Handlers) UpdateSurvey(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("surveyId"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	var sv models.Survey
	if err := c.BodyParser(&sv); err != nil {
		return response.Error(c, "更新調查資料失敗", fiber.StatusBadRequest, err)
	}
	updated, err := h.Service.Update(c.Context(), id, &sv)
	if err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "更新調查資料失敗", fiber.StatusBadRequest, err)
	}
	return response.JSON(c, updated)
}

// DELETE /api/surveys/:surveyId
func (h *Handlers) DeleteSurvey(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("surveyId"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "刪除調查資料失敗", fiber.StatusInternalServerError, err)
	}
	return response.Message(c, "調查資料已成功刪除")
}
