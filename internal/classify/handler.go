package classify

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/extract"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/textprep"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches health, category and classify routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.health)
	rg.GET("/categories", h.categories)
	rg.POST("/classify", h.classify)
	rg.POST("/classify/upload", h.upload)
}

type classifyRequest struct {
	ResumeText string `json:"resumeText"`
}

func (h *Handler) health(c *gin.Context) {
	labels := h.Svc.Labels()
	respond.OK(c, gin.H{
		"ok":          true,
		"modelLoaded": h.Svc.ModelLoaded(),
		"labels":      len(labels),
	})
}

func (h *Handler) categories(c *gin.Context) {
	if !h.Svc.ModelLoaded() {
		WriteError(c, ErrModelNotLoaded)
		return
	}
	respond.OK(c, gin.H{"categories": h.Svc.Labels()})
}

func (h *Handler) classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	res, err := h.Svc.Classify(c.Request.Context(), req.ResumeText)
	if err != nil {
		WriteError(c, err)
		return
	}
	respond.OK(c, res)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	res, err := h.Svc.ClassifyFile(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		WriteError(c, err)
		return
	}
	respond.OK(c, res)
}

// WriteError maps classification errors to responses. Unknown errors are 500s.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, textprep.ErrEmptyInput):
		respond.Error(c, http.StatusBadRequest, "empty_input", "resume text is empty after preprocessing", nil)
	case errors.Is(err, ErrModelNotLoaded):
		respond.Error(c, http.StatusServiceUnavailable, "model_not_loaded", "classification model is not loaded", nil)
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_file_type", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "classification failed", nil)
	}
}
