package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	httpHandler "boardingpass-service/internal/interface/http"
	"boardingpass-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewRouter_HealthAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(httpHandler.NewBoardingPassHandler(nil, logger.NewNop()), logger.NewNop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Healthy", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(httpHandler.RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
