package parties

import (
	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// GET /api/case/:caseId/persons
func (h *Handlers) GetPersonsByCaseID(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "獲取債權人失敗", fiber.StatusBadRequest, err)
	}
	ps, err := h.Service.ListPersons(c.Context(), caseID)
	if err != nil {
		return response.Error(c, "獲取債權人失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, ps)
}

// POST /api/case/:caseId/persons
func (h *Handlers) CreatePerson(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "創建債權人失敗", fiber.StatusBadRequest, err)
	}
	var p models.Person
	if err := c.BodyParser(&p); err != nil {
		return response.Error(c, "創建債權人失敗", fiber.StatusBadRequest, err)
	}
	p.CaseID = caseID
	if err := h.Service.CreatePerson(c.Context(), &p); err != nil {
		if err == ErrNameRequired {
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		}
		return response.Error(c, "創建債權人失敗", fiber.StatusBadRequest, err)
	}
	return response.Created(c, p)
}

// PUT /api/persons/:personId
func (h *Handlers) UpdatePerson(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("personId"))
	if err != nil {
		return response.Error(c, ErrPersonNotFound.Error(), fiber.StatusNotFound, nil)
	}
	var p models.Person
	if err := c.BodyParser(&p); err != nil {
		return response.Error(c, "更新債權人失敗", fiber.StatusBadRequest, err)
	}
	updated, err := h.Service.UpdatePerson(c.Context(), id, &p)
	if err != nil {
		switch err {
		case ErrPersonNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case ErrNameRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "更新債權人失敗", fiber.StatusBadRequest, err)
		}
	}
	return response.JSON(c, updated)
}

// DELETE /api/persons/:personId
func (h *Handlers) DeletePerson(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("personId"))
	if err != nil {
		return response.Error(c, ErrPersonNotFound.Error(), fiber.StatusNotFound, nil)
	}
	if err := h.Service.DeletePerson(c.Context(), id); err != nil {
		if err == ErrPersonNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "刪除債權人失敗", fiber.StatusInternalServerError, err)
	}
	return response.Message(c, "債權人已成功刪除")
}

// GET /api/case/:caseId/debtors
func (h *Handlers) GetDebtorsByCaseID(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "獲取債務人失敗", fiber.StatusBadRequest, err)
	}
	ds, err := h.Service.ListDebtors(c.Context(), caseID)
	if err != nil {
		return response.Error(c, "獲取債務人失敗", fiber.StatusInternalServerError, err)
	}
	return response.JSON(c, ds)
}

// POST /api/case/:caseId/debtors
func (h *Handlers) CreateDebtor(c *fiber.Ctx) error {
	caseID, err := uuid.Parse(c.Params("caseId"))
	if err != nil {
		return response.Error(c, "創建債務人失敗", fiber.StatusBadRequest, err)
	}
	var d models.Debtor
	if err := c.BodyParser(&d); err != nil {
		return response.Error(c, "創建債務人失敗", fiber.StatusBadRequest, err)
	}
	d.CaseID = caseID
	if err := h.Service.CreateDebtor(c.Context(), &d); err != nil {
		if err == ErrNameRequired {
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		}
		return response.Error(c, "創建債務人失敗", fiber.StatusBadRequest, err)
	}
	return response.Created(c, d)
}

// PUT /api/debtors/:debtorId
func (h *Handlers) UpdateDebtor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("debtorId"))
	if err != nil {
		return response.Error(c, ErrDebtorNotFound.Error(), fiber.StatusNotFound, nil)
	}
	var d models.Debtor
	if err := c.BodyParser(&d); err != nil {
		return response.Error(c, "更新債務人失敗", fiber.StatusBadRequest, err)
	}
	updated, err := h.Service.UpdateDebtor(c.Context(), id, &d)
	if err != nil {
		switch err {
		case ErrDebtorNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		case ErrNameRequired:
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		default:
			return response.Error(c, "更新債務人失敗", fiber.StatusBadRequest, err)
		}
	}
	return response.JSON(c, updated)
}

// DELETE /api/debtors/:debtorId
func (h *Handlers) DeleteDebtor(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("debtorId"))
	if err != nil {
		return response.Error(c, ErrDebtorNotFound.Error(), fiber.StatusNotFound, nil)
	}
	if err := h.Service.DeleteDebtor(c.Context(), id); err != nil {
		if err == ErrDebtorNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "刪除債務人失敗", fiber.StatusInternalServerError, err)
	}
	return response.Message(c, "債務人已成功刪除")
}
