package builds

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/valuation"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupBuildTest(t *testing.T) (*Handlers, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Build{}))

	return &Handlers{Service: &Service{DB: db}}, db
}

func newBuildApp(h *Handlers) *fiber.App {
	app := fiber.New()
	app.Get("/api/case/:caseId/builds", h.GetBuildsByCaseID)
	app.Get("/api/case/:caseId/builds/summary", h.GetBuildSummary)
	app.Post("/api/case/:caseId/builds", h.CreateBuild)
	app.Put("/api/builds/:buildId", h.UpdateBuild)
	app.Delete("/api/builds/:buildId", h.DeleteBuild)
	return app
}

func TestCreateBuild_ComputesOwnedArea(t *testing.T) {
	h, _ := setupBuildTest(t)
	app := newBuildApp(h)
	caseID := uuid.New()

	body, _ := json.Marshal(map[string]interface{}{
		"buildNumber":               "266",
		"buildArea":                 100.0,
		"buildHoldingPointPersonal": "50",
		"buildHoldingPointAll":      "100",
		"buildTypeUse":              "住家用",
	})
	req := httptest.NewRequest("POST", "/api/case/"+caseID.String()+"/builds", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out models.Build
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 50.0, out.CalculatedArea)
}

func TestCreateBuild_HalvedTypeUse(t *testing.T) {
	h, _ := setupBuildTest(t)
	app := newBuildApp(h)

	body, _ := json.Marshal(map[string]interface{}{
		"buildNumber":               "266-1",
		"buildArea":                 100.0,
		"buildHoldingPointPersonal": "50",
		"buildHoldingPointAll":      "100",
		"buildTypeUse":              valuation.HalveTypeUse,
	})
	req := httptest.NewRequest("POST", "/api/case/"+uuid.New().String()+"/builds", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out models.Build
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 25.0, out.CalculatedArea)
}

func TestUpdateBuild_TypeUseChangeRecomputes(t *testing.T) {
	h, db := setupBuildTest(t)
	app := newBuildApp(h)
	caseID := uuid.New()

	b := models.Build{
		CaseID:                    caseID,
		BuildNumber:               "266",
		BuildArea:                 100,
		BuildHoldingPointPersonal: "50",
		BuildHoldingPointAll:      "100",
		BuildTypeUse:              "住家用",
		CalculatedArea:            50,
	}
	require.NoError(t, db.Create(&b).Error)

	body, _ := json.Marshal(map[string]interface{}{
		"buildNumber":               "266",
		"buildArea":                 100.0,
		"buildHoldingPointPersonal": "50",
		"buildHoldingPointAll":      "100",
		"buildTypeUse":              valuation.HalveTypeUse,
	})
	req := httptest.NewRequest("PUT", "/api/builds/"+b.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out models.Build
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 25.0, out.CalculatedArea)
	assert.Equal(t, caseID, out.CaseID)
}

func TestBuildSummary(t *testing.T) {
	h, db := setupBuildTest(t)
	app := newBuildApp(h)
	caseID := uuid.New()

	for _, area := range []float64{60, 40} {
		b := models.Build{
			CaseID:                    caseID,
			BuildNumber:               "266",
			BuildArea:                 area,
			BuildHoldingPointPersonal: "1",
			BuildHoldingPointAll:      "1",
			CalculatedArea:            area,
		}
		require.NoError(t, db.Create(&b).Error)
	}

	req := httptest.NewRequest("GET", "/api/case/"+caseID.String()+"/builds/summary", nil)
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

func TestDeleteBuild_NotFound(t *testing.T) {
	h, _ := setupBuildTest(t)
	app := newBuildApp(h)

	req := httptest.NewRequest("DELETE", "/api/builds/"+uuid.New().String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
