package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatkit/contactform/internal/thread"
)

func TestPageHandlerRendersForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler, err := NewPageHandler(thread.LabelConfig{thread.CategoryBug: "lt_bug"})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/", handler.Handle)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Contains(t, body, "Report a bug")
	assert.Contains(t, body, "Up to 500/month")
	assert.Contains(t, body, `"bug":"lt_bug"`)
	assert.Contains(t, body, "/api/contact-form/")
	assert.Contains(t, body, "We respond within 2 hours.")
}
