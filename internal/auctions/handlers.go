package auctions

import (
	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// GET /api/case/:caseId/auctions
func (h *Handlers) GetAuctions(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "獲取拍賣資訊失敗", fiber.StatusBadRequest, err)
	}
	as, err := h.Service.ListByCase(c.Context(), caseID)
	if err != nil {
		return response.Error(c, "獲取拍賣資訊失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, NewViews(as))
}

// POST /api/case/:caseId/auctions
func (h *Handlers) CreateAuction(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "創建拍賣資訊失敗", fiber.StatusBadRequest, err)
	}
	var a models.Auction
	if err := c.BodyParser(&a); err != nil {
		return response.Error(c, "創建拍賣資訊失敗", fiber.StatusBadRequest, err)
	}
	a.CaseID = caseID
	if err := h.Service.Create(c.Context(), &a); err != nil {
		return response.Error(c, "創建拍賣資訊失敗", fiber.StatusBadRequest, err)
	}
	return response.Created(c, NewView(a))
}

// PUT /api/auctions/:id
func (h *Handlers) UpdateAuction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	var a models.Auction
	if err := c.BodyParser(&a); err != nil {
		return response.Error(c, "更新拍賣資訊失敗", fiber.StatusBadRequest, err)
	}
	updated, err := h.Service.Update(c.Context(), id, &a)
	if err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "更新拍賣資訊失敗", fiber.StatusBadRequest, err)
	}
	return response.JSON(c, NewView(*updated))
}

// DELETE /api/auctions/:id
func (h *Handlers) DeleteAuction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, ErrNotFound.Error(), fiber.StatusNotFound, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if err == ErrNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "刪除拍賣資訊失敗", fiber.StatusInternalServerError, err)
	}
	return response.Message(c, "拍賣資訊已成功刪除")
}
