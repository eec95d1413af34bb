package refobjects

import (
	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

func badInput(err error) bool {
	return err == ErrInvalidBuildArea || err == ErrInvalidPrice || err == ErrInvalidRate
}

// GET /api/case/:caseId/referenceObjects
func (h *Handlers) GetReferenceObjects(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "獲取參考物件失敗", fiber.StatusBadRequest, err)
	}
	ros, err := h.Service.ListByCase(c.Context(), caseID)
	if err != nil {
		return response.Error(c, "獲取參考物件失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, ros)
}

// POST /api/case/:caseId/referenceObjects
func (h *Handlers) CreateReferenceObject(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "創建參考物件失敗", fiber.StatusBadRequest, err)
	}
	var ro models.ReferenceObject
	if err := c.BodyParser(&ro); err != nil {
		return response.Error(c, "創建參考物件失敗", fiber.StatusBadRequest, err)
	}
	ro.CaseID = caseID
	if err := h.Service.Create(c.Context(), &ro); err != nil {
		if badInput(err) {
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		}
		return response.Error(c, "創建參考物件失敗", fiber.StatusBadRequest, err)
	}
	return response.Created(c, ro)
}

// PUT /api/referenceObjects/:id
func (h *Handlers) UpdateReferenceObject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	var ro models.ReferenceObject
	if err := c.BodyParser(&ro); err != nil {
		return response.Error(c, "更新參考物件失敗", fiber.StatusBadRequest, err)
	}
	updated, err := h.Service.Update(c.Context(), id, &ro)
	if err != nil {
		switch {
		case err == ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case badInput(err):
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "更新參考物件失敗", fiber.StatusBadRequest, err)
		}
	}
	return response.JSON(c, updated)
}

// DELETE /api/referenceObjects/:id
func (h *Handlers) DeleteReferenceObject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "刪除參考物件失敗", fiber.StatusInternalServerError, err)
	}
	return response.Message(c, "參考物件已成功刪除")
}

// POST /api/referenceObjects/:id/scores
func (h *Handlers) AddScore(c *fiber.Ctx) error {
	objectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	var sc models.ReferenceScore
	if err := c.BodyParser(&sc); err != nil {
		return response.Error(c, "新增評分失敗", fiber.StatusBadRequest, err)
	}
	ro, err := h.Service.AddScore(c.Context(), objectID, &sc)
	if err != nil {
		switch {
		case err == ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case badInput(err):
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "新增評分失敗", fiber.StatusInternalServerError, err)
		}
	}
	return response.Created(c, ro)
}

// PUT /api/referenceObjects/:id/scores/:scoreId
func (h *Handlers) UpdateScore(c *fiber.Ctx) error {
	objectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	scoreID, err := uuid.Parse(c.Params("scoreId"))
	if err != nil {
		return response.Error(c, ErrScoreNotFound.Error(), fiber.StatusNotFound, nil)
	}
	var sc models.ReferenceScore
	if err := c.BodyParser(&sc); err != nil {
		return response.Error(c, "更新評分失敗", fiber.StatusBadRequest, err)
	}
	ro, err := h.Service.UpdateScore(c.Context(), objectID, scoreID, &sc)
	if err != nil {
		switch {
		case err == ErrNotFound || err == ErrScoreNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case badInput(err):
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "更新評分失敗", fiber.StatusInternalServerError, err)
		}
	}
	return response.JSON(c, ro)
}

// DELETE /api/referenceObjects/:id/scores/:scoreId
func (h *Handlers) DeleteScore(c *fiber.Ctx) error {
	objectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	scoreID, err := uuid.Parse(c.Params("scoreId"))
	if err != nil {
		return response.Error(c, ErrScoreNotFound.Error(), fiber.StatusNotFound, nil)
	}
	ro, err := h.Service.DeleteScore(c.Context(), objectID, scoreID)
	if err != nil {
		if err == ErrNotFound || err == ErrScoreNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "刪除評分失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, ro)
}
