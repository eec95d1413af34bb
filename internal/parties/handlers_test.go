package parties

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"foreclosure-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPartyTest(t *testing.T) (*Handlers, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Person{}, &models.Debtor{}))

	return &Handlers{Service: &Service{DB: db}}, db
}

func newPartyApp(h *Handlers) *fiber.App {
	app := fiber.New()
	app.Get("/api/case/:caseId/persons", h.GetPersonsByCaseID)
	app.Post("/api/case/:caseId/persons", h.CreatePerson)
	app.Put("/api/persons/:personId", h.UpdatePerson)
	app.Delete("/api/persons/:personId", h.DeletePerson)
	app.Get("/api/case/:caseId/debtors", h.GetDebtorsByCaseID)
	app.Post("/api/case/:caseId/debtors", h.CreateDebtor)
	app.Put("/api/debtors/:debtorId", h.UpdateDebtor)
	app.Delete("/api/debtors/:debtorId", h.DeleteDebtor)
	return app
}

func TestCreatePerson(t *testing.T) {
	h, _ := setupPartyTest(t)
	app := newPartyApp(h)
	caseID := uuid.New()

	body, _ := json.Marshal(map[string]interface{}{
		"name":  "陳債權",
		"phone": "0912345678",
	})
	req := httptest.NewRequest("POST", "/api/case/"+caseID.String()+"/persons", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out models.Person
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "陳債權", out.Name)
	assert.Equal(t, caseID, out.CaseID)
}

func TestCreatePerson_MissingName(t *testing.T) {
	h, _ := setupPartyTest(t)
	app := newPartyApp(h)

	body, _ := json.Marshal(map[string]interface{}{"phone": "0912345678"})
	req := httptest.NewRequest("POST", "/api/case/"+uuid.New().String()+"/persons", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDebtorCRUD(t *testing.T) {
	h, _ := setupPartyTest(t)
	app := newPartyApp(h)
	caseID := uuid.New()

	body, _ := json.Marshal(map[string]interface{}{"name": "林債務"})
	req := httptest.NewRequest("POST", "/api/case/"+caseID.String()+"/debtors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var d models.Debtor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))

	body, _ = json.Marshal(map[string]interface{}{"name": "林債務改名"})
	req = httptest.NewRequest("PUT", "/api/debtors/"+d.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
	assert.Equal(t, "林債務改名", d.Name)

	req = httptest.NewRequest("DELETE", "/api/debtors/"+d.ID.String(), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/case/"+caseID.String()+"/debtors", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var ds []models.Debtor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ds))
	assert.Len(t, ds, 0)
}
