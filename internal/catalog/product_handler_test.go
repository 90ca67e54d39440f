package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"biovibe-backend/internal/database"
	"biovibe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	app := fiber.New()
	app.Get("/api/products", ListProductsHandler())
	app.Post("/api/products", CreateProductHandler())
	app.Patch("/api/products/:id", UpdateProductHandler())
	app.Delete("/api/products/:id", DeleteProductHandler())
	return app
}

type productEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, productEnvelope) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var env productEnvelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	return res.StatusCode, env
}

func TestCreateThenFetchRoundTripsNumericFields(t *testing.T) {
	app := setupTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/products", ProductInput{
		Name:              "Retatrutide 15mg",
		Sub:               "Lyophilized",
		Price:             99.00,
		CostPrice:         50.25,
		StockQuantity:     100,
		LowStockThreshold: 5,
	})
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Success)

	status, env = doJSON(t, app, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var products []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 1)

	assert.Equal(t, 99.00, products[0].Price)
	assert.Equal(t, 50.25, products[0].CostPrice)
	assert.Equal(t, 100, products[0].StockQuantity)
	assert.Equal(t, 5, products[0].LowStockThreshold)
}

func TestCreateValidationFaultReturnsMessage(t *testing.T) {
	app := setupTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/products", ProductInput{
		Sub:   "Lyophilized",
		Price: 99,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Product name is required", env.Error)

	status, env = doJSON(t, app, http.MethodPost, "/api/products", ProductInput{
		Name:  "Test",
		Sub:   "Lyophilized",
		Price: -1,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Price cannot be negative", env.Error)
}

func TestUpdateTargetsExistingProduct(t *testing.T) {
	app := setupTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/products", ProductInput{
		Name: "Semaglutide 5mg", Sub: "Lyophilized", Price: 80,
	})
	var created models.Product
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/products/%d", created.ID), ProductInput{
		Name: "Semaglutide 5mg", Sub: "Lyophilized", Price: 85.50, CostPrice: 30,
	})
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	// An edit never creates a second row.
	var count int64
	require.NoError(t, database.DB.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var updated models.Product
	require.NoError(t, database.DB.First(&updated, created.ID).Error)
	assert.Equal(t, 85.50, updated.Price)
	assert.Equal(t, 30.0, updated.CostPrice)
}

func TestUpdateMissingProductReturns404(t *testing.T) {
	app := setupTestApp(t)

	status, env := doJSON(t, app, http.MethodPatch, "/api/products/999", ProductInput{
		Name: "Ghost", Sub: "Lyophilized", Price: 1,
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
}

func TestDeleteRemovesFromSubsequentList(t *testing.T) {
	app := setupTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/products", ProductInput{
		Name: "To Delete", Sub: "Lyophilized", Price: 10,
	})
	var created models.Product
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/products/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	_, env = doJSON(t, app, http.MethodGet, "/api/products", nil)
	var products []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	assert.Empty(t, products)
}

func TestMutationsWriteAuditTrail(t *testing.T) {
	app := setupTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/products", ProductInput{
		Name: "Audited", Sub: "Lyophilized", Price: 20,
	})
	var created models.Product
	require.NoError(t, json.Unmarshal(env.Data, &created))

	doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/products/%d", created.ID), ProductInput{
		Name: "Audited", Sub: "Lyophilized", Price: 25,
	})
	doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/products/%d", created.ID), nil)

	var logs []models.AuditLog
	require.NoError(t, database.DB.Order("id asc").Find(&logs).Error)
	require.Len(t, logs, 3)
	assert.Equal(t, models.AuditActionCreate, logs[0].Action)
	assert.Equal(t, models.AuditActionUpdate, logs[1].Action)
	assert.Equal(t, models.AuditActionDelete, logs[2].Action)
	for _, l := range logs {
		assert.Equal(t, "product", l.EntityType)
		assert.Equal(t, created.ID, l.EntityID)
	}
}
