package resumes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-manager/internal/shared/server/middleware"
	"resume-manager/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the resumes service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to an authenticated router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes", h.list)
	rg.POST("/resumes", h.create)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id", h.update)
	rg.DELETE("/resumes/:id", h.remove)
	rg.POST("/resumes/:id/improve", h.improve)
	rg.GET("/resumes/:id/improvements", h.improvements)
}

type resumeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) list(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	list, err := h.Svc.List(c.Request.Context(), ownerID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		return
	}

	out := make([]gin.H, 0, len(list))
	for _, resume := range list {
		out = append(out, toResponse(resume))
	}
	respond.JSON(c, http.StatusOK, out)
}

func (h *Handler) create(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), ownerID, req.Title, req.Content)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create resume", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) get(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	resume, err := h.Svc.Get(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "failed to fetch resume")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) update(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
		return
	}

	resume, err := h.Svc.Update(c.Request.Context(), ownerID, c.Param("id"), req.Title, req.Content)
	if err != nil {
		respondLookupError(c, err, "failed to update resume")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) remove(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	if _, err := h.Svc.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondLookupError(c, err, "failed to delete resume")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"message": "resume deleted"})
}

func (h *Handler) improve(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	improved, err := h.Svc.Improve(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "failed to improve resume")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"improvedContent": improved})
}

func (h *Handler) improvements(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	list, err := h.Svc.Improvements(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondLookupError(c, err, "failed to list improvements")
		return
	}

	out := make([]gin.H, 0, len(list))
	for _, improvement := range list {
		out = append(out, gin.H{
			"id":              improvement.ID,
			"resumeId":        improvement.ResumeID,
			"originalContent": improvement.OriginalContent,
			"improvedContent": improvement.ImprovedContent,
			"createdAt":       improvement.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, out)
}

func respondLookupError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
}

func toResponse(resume Resume) gin.H {
	return gin.H{
		"id":        resume.ID,
		"title":     resume.Title,
		"content":   resume.Content,
		"createdAt": resume.CreatedAt,
		"updatedAt": resume.UpdatedAt,
	}
}
