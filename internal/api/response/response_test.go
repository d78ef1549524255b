package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccessResponseContent(t *testing.T) {
	c, w := newTestContext()

	SuccessResponseContent(c, "ok")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"code":200,"extras":{"content":"ok"}}`, w.Body.String())
}

func TestSuccessResponse(t *testing.T) {
	c, w := newTestContext()

	SuccessResponse(c, map[string]int{"score": 1})

	assert.JSONEq(t, `{"success":true,"code":200,"extras":{"score":1}}`, w.Body.String())
}

func TestErrorResponse(t *testing.T) {
	c, w := newTestContext()

	ErrorResponse(c, http.StatusBadRequest, "impossible board")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, c.IsAborted())
	assert.JSONEq(t, `{"success":false,"code":400,"extras":{"message":"impossible board"}}`, w.Body.String())
}
