package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/careertrack/internal/container"
	handlers "github.com/oksasatya/careertrack/internal/interface/http"
	"github.com/oksasatya/careertrack/internal/interface/middleware"
	"github.com/oksasatya/careertrack/pkg/helpers"
)

type JobModule struct {
	Handler *handlers.JobHandler
	JWT     *helpers.JWTManager
}

func NewJobModule(h *handlers.JobHandler, jwt *helpers.JWTManager) *JobModule {
	return &JobModule{Handler: h, JWT: jwt}
}

func (m *JobModule) Register(rg *gin.RouterGroup) {
	// Import only extracts, it never persists, so it stays public. It hits
	// the LLM, so it gets a tight per-IP budget.
	importLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/jobs/import", importLimiter, m.Handler.Import)

	j := rg.Group("/jobs")
	j.Use(middleware.Auth(m.JWT))
	j.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		// Static segments before the :id routes so gin matches them first.
		j.GET("/calendar", m.Handler.Calendar)
		j.GET("/search", m.Handler.Search)

		j.POST("", m.Handler.Create)
		j.GET("", m.Handler.List)
		j.GET("/:id", m.Handler.Get)
		j.PUT("/:id", m.Handler.Update)
		j.DELETE("/:id", m.Handler.Delete)
	}
}
