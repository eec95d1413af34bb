package lands

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

func setupLandTest(t *testing.T) (*Handlers, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Land{}))

	return &Handlers{Service: &Service{DB: db}}, db
}

func newLandApp(h *Handlers) *fiber.App {
	app := fiber.New()
	app.Get("/api/case/:caseId/lands", h.GetLandsByCaseID)
	app.Get("/api/case/:caseId/lands/summary", h.GetLandSummary)
	app.Post("/api/case/:caseId/lands", h.CreateLand)
	app.Put("/api/lands/:landId", h.UpdateLand)
	app.Delete("/api/lands/:landId", h.DeleteLand)
	return app
}

func TestCreateLand_ComputesOwnedArea(t *testing.T) {
	h, _ := setupLandTest(t)
	app := newLandApp(h)
	caseID := uuid.New()

	body, _ := json.Marshal(map[string]interface{}{
		"landNumber":               "106",
		"landArea":                 100.0,
		"landHoldingPointPersonal": "50",
		"landHoldingPointAll":      "100",
	})
	req := httptest.NewRequest("POST", "/api/case/"+caseID.String()+"/lands", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out models.Land
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 50.0, out.CalculatedArea)
	assert.Equal(t, caseID, out.CaseID)
}

func TestCreateLand_MissingNumber(t *testing.T) {
	h, _ := setupLandTest(t)
	app := newLandApp(h)

	body, _ := json.Marshal(map[string]interface{}{"landArea": 100.0})
	req := httptest.NewRequest("POST", "/api/case/"+uuid.New().String()+"/lands", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateLand_ZeroDenominatorYieldsZero(t *testing.T) {
	h, _ := setupLandTest(t)
	app := newLandApp(h)

	body, _ := json.Marshal(map[string]interface{}{
		"landNumber":               "107",
		"landArea":                 100.0,
		"landHoldingPointPersonal": "1",
		"landHoldingPointAll":      "0",
	})
	req := httptest.NewRequest("POST", "/api/case/"+uuid.New().String()+"/lands", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out models.Land
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 0.0, out.CalculatedArea)
}

func TestUpdateLand_RecomputesArea(t *testing.T) {
	h, db := setupLandTest(t)
	app := newLandApp(h)
	caseID := uuid.New()

	land := models.Land{
		CaseID:                   caseID,
		LandNumber:               "106",
		LandArea:                 100,
		LandHoldingPointPersonal: "50",
		LandHoldingPointAll:      "100",
		CalculatedArea:           50,
	}
	require.NoError(t, db.Create(&land).Error)

	// Change only the holding share; the stored area must follow.
	body, _ := json.Marshal(map[string]interface{}{
		"landNumber":               "106",
		"landArea":                 100.0,
		"landHoldingPointPersonal": "25",
		"landHoldingPointAll":      "100",
	})
	req := httptest.NewRequest("PUT", "/api/lands/"+land.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out models.Land
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 25.0, out.CalculatedArea)
	assert.Equal(t, caseID, out.CaseID)
}

func TestUpdateLand_NotFound(t *testing.T) {
	h, _ := setupLandTest(t)
	app := newLandApp(h)

	body, _ := json.Marshal(map[string]interface{}{"landNumber": "106"})
	req := httptest.NewRequest("PUT", "/api/lands/"+uuid.New().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLandSummary_TotalsInBothUnits(t *testing.T) {
	h, db := setupLandTest(t)
	app := newLandApp(h)
	caseID := uuid.New()

	for _, area := range []float64{60, 40} {
		land := models.Land{
			CaseID:                   caseID,
			LandNumber:               "106",
			LandArea:                 area,
			LandHoldingPointPersonal: "1",
			LandHoldingPointAll:      "1",
			CalculatedArea:           area,
		}
		require.NoError(t, db.Create(&land).Error)
	}

	req := httptest.NewRequest("GET", "/api/case/"+caseID.String()+"/lands/summary", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		TotalArea float64 `json:"totalArea"`
		TotalPing float64 `json:"totalPing"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 100.0, out.TotalArea)
	assert.Equal(t, 30.25, out.TotalPing)
}

func TestDeleteLand(t *testing.T) {
	h, db := setupLandTest(t)
	app := newLandApp(h)

	land := models.Land{
		CaseID:                   uuid.New(),
		LandNumber:               "106",
		LandArea:                 100,
		LandHoldingPointPersonal: "1",
		LandHoldingPointAll:      "1",
	}
	require.NoError(t, db.Create(&land).Error)

	req := httptest.NewRequest("DELETE", "/api/lands/"+land.ID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("DELETE", "/api/lands/"+land.ID.String(), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
