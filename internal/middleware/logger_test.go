package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		err       error
		wantLevel string
	}{
		{"ok", http.StatusOK, nil, "info"},
		{"client error", http.StatusNotFound, errors.New("not found"), "warn"},
		{"server error", http.StatusInternalServerError, errors.New("db down"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)

			r := gin.New()
			r.Use(RequestLogger(log))
			r.GET("/thing", func(ctx *gin.Context) {
				if tt.err != nil {
					_ = ctx.Error(tt.err)
				}
				ctx.Status(tt.status)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/thing", nil))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/thing", entry["path"])

			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), entry["error"])
			} else {
				assert.NotContains(t, entry, "error")
			}
		})
	}
}
