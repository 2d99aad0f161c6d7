package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/careertrack/internal/container"
	handlers "github.com/oksasatya/careertrack/internal/interface/http"
	"github.com/oksasatya/careertrack/internal/interface/middleware"
	"github.com/oksasatya/careertrack/pkg/helpers"
)

type ResumeModule struct {
	Handler *handlers.ResumeHandler
	JWT     *helpers.JWTManager
}

func NewResumeModule(h *handlers.ResumeHandler, jwt *helpers.JWTManager) *ResumeModule {
	return &ResumeModule{Handler: h, JWT: jwt}
}

func (m *ResumeModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/resumes", m.Handler.Create)
		auth.GET("/resumes", m.Handler.List)
		auth.POST("/export/text", m.Handler.ExportText)
		auth.GET("/resumes/:id", m.Handler.Get)
		auth.PUT("/resumes/:id", m.Handler.Update)
		auth.DELETE("/resumes/:id", m.Handler.Delete)

		auth.POST("/presets", m.Handler.CreatePreset)
		auth.GET("/presets", m.Handler.ListPresets)
		auth.PUT("/presets/:id", m.Handler.UpdatePreset)
		auth.DELETE("/presets/:id", m.Handler.DeletePreset)
	}
}
