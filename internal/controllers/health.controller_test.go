package controllers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"exerciselog/internal/controllers"
)

type fakeStatus map[string]interface{}

func (f fakeStatus) GetStatus(context.Context) map[string]interface{} { return f }

func TestHealth(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedHealth string
	}{
		{name: "healthy", expectedStatus: http.StatusOK, expectedHealth: `"database_health":true`},
		{name: "database down", pingErr: errors.New("dial tcp: refused"), expectedStatus: http.StatusServiceUnavailable, expectedHealth: `"database_health":false`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hc := controllers.NewHealthController(
				func(context.Context) error { return tt.pingErr },
				fakeStatus{"connected": true},
				"sqlite",
			)
			router := setupTestRouter()
			router.GET("/health", hc.Health)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedHealth)
			assert.Contains(t, w.Body.String(), `"cache":{"connected":true}`)
		})
	}
}

func TestIndexWithoutCache(t *testing.T) {
	hc := controllers.NewHealthController(func(context.Context) error { return nil }, nil, "postgres")
	router := setupTestRouter()
	router.GET("/", hc.Index)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"postgres"`)
	assert.Contains(t, w.Body.String(), `"cache":false`)
}
