package documents

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/classify"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

const maxRequestSize = 2 << 20 // 2MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.generate)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:id", h.get)
	rg.GET("/documents/:id/export", h.export)
	rg.GET("/exports/*key", h.download)
}

func (h *Handler) generate(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestSize)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	kind, err := model.ParseKind(req.Kind)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"allowed": []model.DocumentKind{model.KindResume, model.KindCoverLetter, model.KindPortfolio}})
		return
	}
	c.Set("documentKind", string(kind))

	doc, err := h.Svc.Generate(c.Request.Context(), sessionID, GenerateInput{
		Kind:           kind,
		ResumeText:     req.ResumeText,
		Fields:         req.Fields,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("documentId", doc.ID)
	respond.Created(c, doc)
}

func (h *Handler) list(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	docs, err := h.Svc.List(c.Request.Context(), sessionID, limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, toSummary(doc))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	documentID := c.Param("id")
	c.Set("documentId", documentID)

	doc, err := h.Svc.Get(c.Request.Context(), sessionID, documentID)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, doc)
}

func (h *Handler) export(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	documentID := c.Param("id")
	c.Set("documentId", documentID)

	format, err := render.ParseFormat(c.DefaultQuery("format", string(render.FormatPDF)))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("exportFormat", string(format))

	res, err := h.Svc.Export(c.Request.Context(), sessionID, documentID, format)
	if err != nil {
		writeError(c, err)
		return
	}
	if res.Saved != nil {
		c.Header("X-Export-Key", res.Saved.Key)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Artifact.FileName))
	c.Data(http.StatusOK, res.Artifact.ContentType, res.Artifact.Bytes)
}

func (h *Handler) download(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	rc, obj, err := h.Svc.OpenExport(c.Request.Context(), sessionID, c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}
	defer rc.Close()

	name := path.Base(obj.Key)
	if _, rest, ok := strings.Cut(name, "_"); ok && rest != "" {
		name = rest
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.DataFromReader(http.StatusOK, obj.SizeBytes, obj.ContentType, rc, nil)
}

func writeError(c *gin.Context, err error) {
	var missing *model.MissingRequiredFieldError
	var renderErr *render.RenderError
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, os.ErrNotExist):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, object.ErrForbidden):
		respond.Error(c, http.StatusNotFound, "not_found", "export not found", nil)
	case errors.Is(err, ErrExportsDisabled):
		respond.Error(c, http.StatusNotFound, "exports_disabled", "export storage is not enabled", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.As(err, &missing):
		respond.Error(c, http.StatusUnprocessableEntity, "missing_required_field", "required resume fields are missing", missing.Fields)
	case errors.Is(err, render.ErrUnsupportedFormat):
		respond.Error(c, http.StatusBadRequest, "unsupported_format", err.Error(), gin.H{"allowed": []render.Format{render.FormatPDF, render.FormatDOCX, render.FormatHTML}})
	case errors.As(err, &renderErr):
		respond.Error(c, http.StatusInternalServerError, "render_error", "failed to render document", gin.H{"format": renderErr.Format})
	default:
		classify.WriteError(c, err)
	}
}
