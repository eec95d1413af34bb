package builds

import (
	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// GET /api/case/:caseId/builds
func (h *Handlers) GetBuildsByCaseID(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "獲取建物資料失敗", fiber.StatusBadRequest, err)
	}
	bs, err := h.Service.ListByCase(c.Context(), caseID)
	if err != nil {
		return response.Error(c, "獲取建物資料失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, bs)
}

// GET /api/case/:caseId/builds/summary — read-time area totals for the list.
func (h *Handlers) GetBuildSummary(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "獲取建物資料失敗", fiber.StatusBadRequest, err)
	}
	m2, ping, err := h.Service.Summary(c.Context(), caseID)
	if err != nil {
		return response.Error(c, "獲取建物資料失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, fiber.Map{"totalArea": m2, "totalPing": ping})
}

// POST /api/case/:caseId/builds
func (h *Handlers) CreateBuild(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "創建建物資料失敗", fiber.StatusBadRequest, err)
	}
	var b models.Build
	if err := c.BodyParser(&b); err != nil {
		return response.Error(c, "創建建物資料失敗", fiber.StatusBadRequest, err)
	}
	if b.BuildNumber == "" {
		return response.Error(c, "請輸入建號", fiber.StatusBadRequest, nil)
	}
	b.CaseID = caseID
	if err := h.Service.Create(c.Context(), &b); err != nil {
		return response.Error(c, "創建建物資料失敗", fiber.StatusBadRequest, err)
	}
	return response.Created(c, b)
}

// PUT /api/builds/:buildId
func (h *Handlers) UpdateBuild(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("buildId"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	var b models.Build
	if err := c.BodyParser(&b); err != nil {
		return response.Error(c, "更新建物資料失敗", fiber.StatusBadRequest, err)
	}
	updated, err := h.Service.Update(c.Context(), id, &b)
	if err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "更新建物資料失敗", fiber.StatusBadRequest, err)
	}
	return response.JSON(c, updated)
}

// DELETE /api/builds/:buildId
func (h *Handlers) DeleteBuild(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("buildId"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "刪除建物資料失敗", fiber.StatusInternalServerError, err)
	}
	return response.Message(c, "建物資料已成功刪除")
}
