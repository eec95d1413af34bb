package decisions

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

func setupDecisionTest(t *testing.T) (*Handlers, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.FinalDecision{}))

	return &Handlers{Service: &Service{DB: db}}, db
}

func newDecisionApp(h *Handlers) *fiber.App {
	app := fiber.New()
	app.Get("/api/case/:caseId/finalDecisions", h.GetFinalDecisionsByCaseID)
	app.Post("/api/case/:caseId/finalDecisions", h.CreateFinalDecision)
	app.Put("/api/finalDecisions/:finalDecisionId", h.UpdateFinalDecision)
	app.Delete("/api/finalDecisions/:finalDecisionId", h.DeleteFinalDecision)
	return app
}

func TestCreateFinalDecision(t *testing.T) {
	h, _ := setupDecisionTest(t)
	app := newDecisionApp(h)
	caseID := uuid.New()

	body, _ := json.Marshal(map[string]interface{}{
		"finalDecision":       "1拍進場",
		"finalDecisionRemark": "條件良好",
	})
	req := httptest.NewRequest("POST", "/api/case/"+caseID.String()+"/finalDecisions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out models.FinalDecision
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "1拍進場", out.FinalDecision)
	assert.Equal(t, caseID, out.CaseID)
}

func TestCreateFinalDecision_RejectsUnknownValue(t *testing.T) {
	h, _ := setupDecisionTest(t)
	app := newDecisionApp(h)

	body, _ := json.Marshal(map[string]interface{}{"finalDecision": "5拍進場"})
	req := httptest.NewRequest("POST", "/api/case/"+uuid.New().String()+"/finalDecisions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateFinalDecision_NotFound(t *testing.T) {
	h, _ := setupDecisionTest(t)
	app := newDecisionApp(h)

	body, _ := json.Marshal(map[string]interface{}{"finalDecision": "放棄"})
	req := httptest.NewRequest("PUT", "/api/finalDecisions/"+uuid.New().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteFinalDecision(t *testing.T) {
	h, db := setupDecisionTest(t)
	app := newDecisionApp(h)

	f := models.FinalDecision{CaseID: uuid.New(), FinalDecision: "未判定"}
	require.NoError(t, db.Create(&f).Error)

	req := httptest.NewRequest("DELETE", "/api/finalDecisions/"+f.ID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
