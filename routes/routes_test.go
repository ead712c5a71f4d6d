package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectplatform/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	hb := &handlers.HandlerBundle{
		Profile:      &handlers.ProfileHandler{},
		Catalog:      &handlers.CatalogHandler{},
		Availability: &handlers.AvailabilityHandler{},
		Booking:      &handlers.BookingHandler{},
		Session:      &handlers.SessionHandler{},
		Meeting:      &handlers.MeetingHandler{},
		Payment:      &handlers.PaymentHandler{},
		Upload:       &handlers.UploadHandler{},
	}
	return SetupRouter(hb, 1000)
}

func TestHealthRoute(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCORSPreflight(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest("OPTIONS", "/bookings", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouteTable(t *testing.T) {
	router := testRouter()

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"GET /profiles",
		"GET /profiles/:user_id",
		"POST /profiles",
		"GET /search/teachers",
		"GET /services",
		"POST /services",
		"GET /availability",
		"POST /availability",
		"DELETE /availability/:availability_id",
		"GET /bookings",
		"POST /bookings",
		"GET /bookings/:booking_id/session",
		"POST /sessions",
		"GET /sessions/:session_id",
		"PUT /sessions/:session_id",
		"POST /meetings",
		"GET /meetings/:session_id",
		"DELETE /meetings",
		"POST /attendees",
		"POST /presigned-url",
		"POST /payments/initialize",
		"POST /payments/verify",
		"GET /payments",
		"GET /admin/payment-config",
		"PUT /admin/payment-config",
		"GET /health",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestUnknownRoute(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
