package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parkwise/internal/models"
	"parkwise/internal/pricing"
	"parkwise/internal/repositories/interfaces"
	"parkwise/internal/services"
	"parkwise/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSessionService struct {
	entry      *models.VehicleEntry
	exitResult *services.ExitResult
	err        error
}

func (f *fakeSessionService) RegisterEntry(ctx context.Context, request *services.VehicleEntryRequest) (*models.VehicleEntry, error) {
	return f.entry, f.err
}

func (f *fakeSessionService) RegisterExit(ctx context.Context, request *services.VehicleExitRequest) (*services.ExitResult, error) {
	return f.exitResult, f.err
}

func (f *fakeSessionService) GetByTransactionID(ctx context.Context, transactionID string) (*models.VehicleEntry, error) {
	return f.entry, f.err
}

func (f *fakeSessionService) ListActive(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error) {
	return nil, 0, f.err
}

func (f *fakeSessionService) List(ctx context.Context, params *utils.PaginationParams) ([]*models.VehicleEntry, int64, error) {
	return nil, 0, f.err
}

func newSessionRouter(svc services.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSessionHandler(svc)
	router := gin.New()
	router.POST("/vehicles/entry", h.VehicleEntry)
	router.POST("/vehicles/exit", h.VehicleExit)
	router.GET("/sessions/:transaction_id", h.Get)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validEntryBody() map[string]interface{} {
	return map[string]interface{}{
		"vehicleNumber": "KA01AB1234",
		"vehicleType":   primitive.NewObjectID().Hex(),
		"transactionId": "TXN-1001",
		"entryTime":     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC).Format(time.RFC3339),
		"deviceId":      "GATE01",
	}
}

func TestVehicleEntryCreated(t *testing.T) {
	router := newSessionRouter(&fakeSessionService{
		entry: &models.VehicleEntry{TransactionID: "TXN-1001", VehicleNumber: "KA01AB1234"},
	})

	w := postJSON(t, router, "/vehicles/entry", validEntryBody())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "TXN-1001")
}

func TestVehicleEntryDuplicateConflict(t *testing.T) {
	router := newSessionRouter(&fakeSessionService{err: interfaces.ErrDuplicate})

	w := postJSON(t, router, "/vehicles/entry", validEntryBody())
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestVehicleEntryValidationFailure(t *testing.T) {
	router := newSessionRouter(&fakeSessionService{})

	body := validEntryBody()
	body["vehicleNumber"] = "x"
	w := postJSON(t, router, "/vehicles/entry", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVehicleExitReturnsAssessment(t *testing.T) {
	amount := 40.0
	router := newSessionRouter(&fakeSessionService{
		exitResult: &services.ExitResult{
			Entry: &models.VehicleEntry{TransactionID: "TXN-1001", AmountPaid: &amount},
			Assessment: &pricing.Assessment{
				Amount:          40,
				Classification:  pricing.ClassStandard,
				DurationMinutes: 90,
			},
		},
	})

	w := postJSON(t, router, "/vehicles/exit", map[string]interface{}{
		"transactionId": "TXN-1001",
		"exitTime":      time.Date(2026, 3, 1, 11, 30, 0, 0, time.UTC).Format(time.RFC3339),
		"deviceId":      "GATE02",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"classification":"standard"`)
}

func TestVehicleExitUnknownTransaction(t *testing.T) {
	router := newSessionRouter(&fakeSessionService{err: interfaces.ErrNotFound})

	w := postJSON(t, router, "/vehicles/exit", map[string]interface{}{
		"transactionId": "TXN-MISSING",
		"exitTime":      time.Now().UTC().Format(time.RFC3339),
		"deviceId":      "GATE02",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVehicleExitAlreadyExited(t *testing.T) {
	router := newSessionRouter(&fakeSessionService{err: services.ErrAlreadyExited})

	w := postJSON(t, router, "/vehicles/exit", map[string]interface{}{
		"transactionId": "TXN-1001",
		"exitTime":      time.Now().UTC().Format(time.RFC3339),
		"deviceId":      "GATE02",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetSession(t *testing.T) {
	router := newSessionRouter(&fakeSessionService{
		entry: &models.VehicleEntry{TransactionID: "TXN-1001"},
	})

	req := httptest.NewRequest(http.MethodGet, "/sessions/TXN-1001", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
