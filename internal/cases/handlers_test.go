package cases

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"foreclosure-backend/internal/middleware"
	"foreclosure-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCaseTest(t *testing.T) (*Handlers, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Case{}))

	return &Handlers{Service: &Service{DB: db}}, db
}

func newCaseApp(h *Handlers, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &middleware.SessionUser{
			UserID: userID.String(),
			Name:   "測試員",
			Email:  "tester@example.com",
		})
		return c.Next()
	})
	app.Get("/api/cases", h.GetAllCases)
	app.Get("/api/cases/:id", h.GetCase)
	app.Post("/api/cases", h.CreateCase)
	app.Put("/api/cases/:id", h.UpdateCase)
	app.Delete("/api/cases/:id", h.DeleteCase)
	return app
}

func TestCreateCase_SetsCreator(t *testing.T) {
	h, _ := setupCaseTest(t)
	userID := uuid.New()
	app := newCaseApp(h, userID)

	body, _ := json.Marshal(map[string]interface{}{
		"title":       "士林地院 113 司執字",
		"description": "法拍案件",
		"caseNumber":  "113-司執-1234",
		"company":     "測試公司",
		"city":        "台北市",
		"district":    "士林區",
	})
	req := httptest.NewRequest("POST", "/api/cases", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out models.Case
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.CreatedBy)
	assert.Equal(t, userID, *out.CreatedBy)
	assert.False(t, out.DueDate.IsZero())
}

func TestCreateCase_MissingTitle(t *testing.T) {
	h, _ := setupCaseTest(t)
	app := newCaseApp(h, uuid.New())

	body, _ := json.Marshal(map[string]interface{}{"description": "無標題"})
	req := httptest.NewRequest("POST", "/api/cases", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetCase_NotFound(t *testing.T) {
	h, _ := setupCaseTest(t)
	app := newCaseApp(h, uuid.New())

	req := httptest.NewRequest("GET", "/api/cases/"+uuid.New().String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var out struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, ErrNotFound.Error(), out.Message)
}

func TestUpdateCase_KeepsCreator(t *testing.T) {
	h, db := setupCaseTest(t)
	creator := uuid.New()
	app := newCaseApp(h, uuid.New())

	kase := models.Case{
		Title:       "原標題",
		Description: "原描述",
		CaseNumber:  "113-司執-1234",
		Company:     "測試公司",
		City:        "台北市",
		District:    "士林區",
		CreatedBy:   &creator,
	}
	require.NoError(t, db.Create(&kase).Error)

	body, _ := json.Marshal(map[string]interface{}{
		"title":       "改過的標題",
		"description": "改過的描述",
		"caseNumber":  "113-司執-1234",
		"company":     "測試公司",
		"city":        "台北市",
		"district":    "士林區",
	})
	req := httptest.NewRequest("PUT", "/api/cases/"+kase.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out models.Case
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "改過的標題", out.Title)
	require.NotNil(t, out.CreatedBy)
	assert.Equal(t, creator, *out.CreatedBy)
}

func TestGetAllCases_NewestFirst(t *testing.T) {
	h, db := setupCaseTest(t)
	app := newCaseApp(h, uuid.New())

	for _, title := range []string{"第一件", "第二件"} {
		kase := models.Case{
			Title:       title,
			Description: "desc",
			CaseNumber:  "113-" + title,
			Company:     "測試公司",
			City:        "台北市",
			District:    "士林區",
		}
		require.NoError(t, db.Create(&kase).Error)
	}

	req := httptest.NewRequest("GET", "/api/cases", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out []models.Case
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 2)
}

func TestDeleteCase(t *testing.T) {
	h, db := setupCaseTest(t)
	app := newCaseApp(h, uuid.New())

	kase := models.Case{
		Title:       "待刪除",
		Description: "desc",
		CaseNumber:  "113-del",
		Company:     "測試公司",
		City:        "台北市",
		District:    "士林區",
	}
	require.NoError(t, db.Create(&kase).Error)

	req := httptest.NewRequest("DELETE", "/api/cases/"+kase.ID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("DELETE", "/api/cases/"+kase.ID.String(), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
