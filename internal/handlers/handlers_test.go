// internal/handlers/handlers_test.go
package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openmart/ecommerce-backend/internal/config"
	"github.com/openmart/ecommerce-backend/internal/router"
	"github.com/openmart/ecommerce-backend/internal/utils"
)

// newTestRouter wires the full route table against an unconnected client.
// Only paths that fail validation before reaching the store are exercised
// here; store-backed behavior lives in the integration suite.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// The short selection timeout makes a request that accidentally reaches
	// the store fail fast instead of hanging on server selection.
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://localhost:27017").
		SetServerSelectionTimeout(time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	return router.Initialize(client.Database("ecommerce_test"), &config.Config{Environment: "test"})
}

func doRequest(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestLivenessAndHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "running successfully")

	w = doRequest(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestUserOrdersRejectsMalformedID(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "/users/not-an-id/orders")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Invalid user ID format", resp.Error.Message)
}

func TestOrderDetailRejectsMalformedID(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "/orders/12345")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Invalid order ID format", resp.Error.Message)
}

func TestProductReviewsRejectsMalformedID(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "/products/zzz/reviews")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Invalid product ID format", resp.Error.Message)
}

func TestSearchRequiresQuery(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "/products/search")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
}

func TestSearchRejectsOutOfRangeLimit(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/products/search?query=laptop&limit=0",
		"/products/search?query=laptop&limit=101",
		"/products/search?query=laptop&skip=-1",
		"/products/search?query=laptop&min_price=-5",
	} {
		w := doRequest(r, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path=%s", path)
	}
}

func TestReviewsRejectOutOfRangePagination(t *testing.T) {
	r := newTestRouter(t)

	// An explicit limit=0 is out of range, not a request for the default.
	for _, path := range []string{
		"/products/0123456789abcdef01234567/reviews?limit=0",
		"/products/0123456789abcdef01234567/reviews?limit=101",
		"/products/0123456789abcdef01234567/reviews?skip=-1",
	} {
		w := doRequest(r, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path=%s", path)
	}
}

func TestTopProductsRejectsOutOfRangeParams(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/analytics/top-products?days=0",
		"/analytics/top-products?days=4000",
		"/analytics/top-products?limit=0",
		"/analytics/top-products?limit=21",
	} {
		w := doRequest(r, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, "path=%s", path)
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(r, "/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
