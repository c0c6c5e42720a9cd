package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type testRegistrar struct{}

func (testRegistrar) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/menu", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func setupEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewRouter(engine).Mount("", nil, testRegistrar{}).Setup()
	return engine
}

func TestRouter_RegisteredRoute(t *testing.T) {
	engine := setupEngine()

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	engine := setupEngine()

	req := httptest.NewRequest(http.MethodDelete, "/menu", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error": "Method not allowed"}`, w.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	engine := setupEngine()

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Not found"}`, w.Body.String())
}

func TestRouter_MountPrefixAndMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	var sawMiddleware bool
	mw := func(c *gin.Context) {
		sawMiddleware = true
		c.Next()
	}
	NewRouter(engine).Mount("/admin", []gin.HandlerFunc{mw}, testRegistrar{}).Setup()

	req := httptest.NewRequest(http.MethodGet, "/admin/menu", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, sawMiddleware)
}
