package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/careertrack/internal/application"
	"github.com/oksasatya/careertrack/pkg/response"
)

type JobHandler struct {
	Jobs   *application.JobService
	Logger *logrus.Logger
}

func NewJobHandler(jobs *application.JobService, logger *logrus.Logger) *JobHandler {
	return &JobHandler{Jobs: jobs, Logger: logger}
}

// Create POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req application.JobPostingInput
	if !bindJSON(c, &req) {
		return
	}
	j, err := h.Jobs.Create(c.Request.Context(), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, "job saved", gin.H{"job": j})
}

// List GET /api/jobs
func (h *JobHandler) List(c *gin.Context) {
	list, err := h.Jobs.List(c.Request.Context(), userID(c))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"jobs": list})
}

// Get GET /api/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	j, err := h.Jobs.Get(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"job": j})
}

// Update PUT /api/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	var req application.JobPostingUpdate
	if !bindJSON(c, &req) {
		return
	}
	j, err := h.Jobs.Update(c.Request.Context(), c.Param("id"), userID(c), req)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "job updated", gin.H{"job": j})
}

// Delete DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.Jobs.Delete(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "job deleted", nil)
}

// Calendar GET /api/jobs/calendar
// Upcoming deadlines ordered soonest-first, each tagged with an urgency color.
func (h *JobHandler) Calendar(c *gin.Context) {
	entries, err := h.Jobs.Calendar(c.Request.Context(), userID(c))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"deadlines": entries})
}

// Search GET /api/jobs/search?q=...&size=...
func (h *JobHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Err(c, http.StatusBadRequest, response.CodeValidationError, "q is required")
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Jobs.Search(c.Request.Context(), userID(c), q, size)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "", gin.H{"results": hits})
}

// Import POST /api/jobs/import {content}
// Public route: extracts structured fields from pasted posting text. Nothing
// is persisted; saving the result goes through the authenticated Create.
func (h *JobHandler) Import(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.Jobs.ImportFromContent(c.Request.Context(), req.Content)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, "job extracted", gin.H{"job": job})
}
