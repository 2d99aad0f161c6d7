package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/careertrack/internal/application"
	"github.com/oksasatya/careertrack/pkg/response"
)

// ProfileHandler exposes CRUD over the five profile sections. All routes sit
// behind the auth middleware; every operation is scoped to the caller.
type ProfileHandler struct {
	Profile *application.ProfileService
	Logger  *logrus.Logger
}

func NewProfileHandler(profile *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Profile: profile, Logger: logger}
}

// ---- Education ----

// CreateEducation POST /api/education
func (h *ProfileHandler) CreateEducation(c *gin.Context) {
	var req application.EducationInput
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.Profile.CreateEducation(c.Request.Context(), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, "education added", gin.H{"education": e})
}

// ListEducation GET /api/education
func (h *ProfileHandler) ListEducation(c *gin.Context) {
	list, err := h.Profile.ListEducation(c.Request.Context(), userID(c))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"education": list})
}

// UpdateEducation PUT /api/education/:id
func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	var req application.EducationUpdate
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.Profile.UpdateEducation(c.Request.Context(), c.Param("id"), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "education updated", gin.H{"education": e})
}

// DeleteEducation DELETE /api/education/:id
func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	if err := h.Profile.DeleteEducation(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "education deleted", nil)
}

// ---- Employment ----

// CreateEmployment POST /api/employment
func (h *ProfileHandler) CreateEmployment(c *gin.Context) {
	var req application.EmploymentInput
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.Profile.CreateEmployment(c.Request.Context(), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, "employment added", gin.H{"employment": e})
}

// ListEmployment GET /api/employment
func (h *ProfileHandler) ListEmployment(c *gin.Context) {
	list, err := h.Profile.ListEmployment(c.Request.Context(), userID(c))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"employment": list})
}

// UpdateEmployment PUT /api/employment/:id
func (h *ProfileHandler) UpdateEmployment(c *gin.Context) {
	var req application.EmploymentUpdate
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.Profile.UpdateEmployment(c.Request.Context(), c.Param("id"), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "employment updated", gin.H{"employment": e})
}

// DeleteEmployment DELETE /api/employment/:id
func (h *ProfileHandler) DeleteEmployment(c *gin.Context) {
	if err := h.Profile.DeleteEmployment(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "employment deleted", nil)
}

// ---- Skills ----

// CreateSkill POST /api/skills
func (h *ProfileHandler) CreateSkill(c *gin.Context) {
	var req application.SkillInput
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.Profile.CreateSkill(c.Request.Context(), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, "skill added", gin.H{"skill": s})
}

// ListSkills GET /api/skills
func (h *ProfileHandler) ListSkills(c *gin.Context) {
	list, err := h.Profile.ListSkills(c.Request.Context(), userID(c))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"skills": list})
}

// UpdateSkill PUT /api/skills/:id
func (h *ProfileHandler) UpdateSkill(c *gin.Context) {
	var req application.SkillUpdate
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.Profile.UpdateSkill(c.Request.Context(), c.Param("id"), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "skill updated", gin.H{"skill": s})
}

// DeleteSkill DELETE /api/skills/:id
func (h *ProfileHandler) DeleteSkill(c *gin.Context) {
	if err := h.Profile.DeleteSkill(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "skill deleted", nil)
}

// ---- Certifications ----

// CreateCertification POST /api/certifications
func (h *ProfileHandler) CreateCertification(c *gin.Context) {
	var req application.CertificationInput
	if !bindJSON(c, &req) {
		return
	}
	cert, err := h.Profile.CreateCertification(c.Request.Context(), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, "certification added", gin.H{"certification": cert})
}

// ListCertifications GET /api/certifications
func (h *ProfileHandler) ListCertifications(c *gin.Context) {
	list, err := h.Profile.ListCertifications(c.Request.Context(), userID(c))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"certifications": list})
}

// UpdateCertification PUT /api/certifications/:id
func (h *ProfileHandler) UpdateCertification(c *gin.Context) {
	var req application.CertificationUpdate
	if !bindJSON(c, &req) {
		return
	}
	cert, err := h.Profile.UpdateCertification(c.Request.Context(), c.Param("id"), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "certification updated", gin.H{"certification": cert})
}

// DeleteCertification DELETE /api/certifications/:id
func (h *ProfileHandler) DeleteCertification(c *gin.Context) {
	if err := h.Profile.DeleteCertification(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "certification deleted", nil)
}

// ---- Projects ----

// CreateProject POST /api/projects
func (h *ProfileHandler) CreateProject(c *gin.Context) {
	var req application.ProjectInput
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Profile.CreateProject(c.Request.Context(), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, "project added", gin.H{"project": p})
}

// ListProjects GET /api/projects
func (h *ProfileHandler) ListProjects(c *gin.Context) {
	list, err := h.Profile.ListProjects(c.Request.Context(), userID(c))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"projects": list})
}

// UpdateProject PUT /api/projects/:id
func (h *ProfileHandler) UpdateProject(c *gin.Context) {
	var req application.ProjectUpdate
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.Profile.UpdateProject(c.Request.Context(), c.Param("id"), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "project updated", gin.H{"project": p})
}

// DeleteProject DELETE /api/projects/:id
func (h *ProfileHandler) DeleteProject(c *gin.Context) {
	if err := h.Profile.DeleteProject(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "project deleted", nil)
}
