package httputil_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/internal/httputil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
		want      map[string]any
	}{
		{
			name:      "with request id",
			requestID: "rid-1",
			want:      map[string]any{"code": "validation_error", "message": "start off grid", "request_id": "rid-1"},
		},
		{
			name: "without request id",
			want: map[string]any{"code": "validation_error", "message": "start off grid"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", func(c *gin.Context) {
				if tt.requestID != "" {
					c.Set("request_id", tt.requestID)
				}
				httputil.RespondError(c, http.StatusBadRequest, "validation_error", "start off grid")
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))
			require.Equal(t, http.StatusBadRequest, w.Code)

			var got map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
