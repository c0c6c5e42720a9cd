package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kalori/backend/internal/interfaces/http/dto"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

type mountPoint struct {
	prefix     string
	middleware []gin.HandlerFunc
	registrars []RouteRegistrar
}

// Router manages HTTP route registration. Routes live at the engine root,
// with registrars grouped under a shared prefix and middleware chain.
type Router struct {
	engine *gin.Engine
	mounts []mountPoint
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		engine: engine,
		mounts: make([]mountPoint, 0),
	}
}

// Mount attaches registrars under a prefix with a shared middleware chain.
// An empty prefix mounts at the root.
func (r *Router) Mount(prefix string, middleware []gin.HandlerFunc, registrars ...RouteRegistrar) *Router {
	r.mounts = append(r.mounts, mountPoint{
		prefix:     prefix,
		middleware: middleware,
		registrars: registrars,
	})
	return r
}

// Setup registers all routes with the engine along with the method and
// route fallbacks
func (r *Router) Setup() {
	r.engine.HandleMethodNotAllowed = true
	r.engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse("Method not allowed"))
	})
	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not found"))
	})

	for _, mount := range r.mounts {
		group := r.engine.Group(mount.prefix)
		if len(mount.middleware) > 0 {
			group.Use(mount.middleware...)
		}
		for _, registrar := range mount.registrars {
			registrar.RegisterRoutes(group)
		}
	}
}
