package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/careertrack/internal/container"
	handlers "github.com/oksasatya/careertrack/internal/interface/http"
	"github.com/oksasatya/careertrack/internal/interface/middleware"
	"github.com/oksasatya/careertrack/pkg/helpers"
)

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	p := rg.Group("/")
	p.Use(middleware.Auth(m.JWT))
	p.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		p.POST("/education", m.Handler.CreateEducation)
		p.GET("/education", m.Handler.ListEducation)
		p.PUT("/education/:id", m.Handler.UpdateEducation)
		p.DELETE("/education/:id", m.Handler.DeleteEducation)

		p.POST("/employment", m.Handler.CreateEmployment)
		p.GET("/employment", m.Handler.ListEmployment)
		p.PUT("/employment/:id", m.Handler.UpdateEmployment)
		p.DELETE("/employment/:id", m.Handler.DeleteEmployment)

		p.POST("/skills", m.Handler.CreateSkill)
		p.GET("/skills", m.Handler.ListSkills)
		p.PUT("/skills/:id", m.Handler.UpdateSkill)
		p.DELETE("/skills/:id", m.Handler.DeleteSkill)

		p.POST("/certifications", m.Handler.CreateCertification)
		p.GET("/certifications", m.Handler.ListCertifications)
		p.PUT("/certifications/:id", m.Handler.UpdateCertification)
		p.DELETE("/certifications/:id", m.Handler.DeleteCertification)

		p.POST("/projects", m.Handler.CreateProject)
		p.GET("/projects", m.Handler.ListProjects)
		p.PUT("/projects/:id", m.Handler.UpdateProject)
		p.DELETE("/projects/:id", m.Handler.DeleteProject)
	}
}
