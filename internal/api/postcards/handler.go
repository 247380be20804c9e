package postcards

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"archarad-app/internal/catalog"
	"archarad-app/internal/editor"
	"archarad-app/internal/repository"
)

// Handler is the curator-only mutation surface. Each request runs through a
// fresh edit-session orchestrator; the catalog and stores are shared.
type Handler struct {
	store   *repository.PostcardStore
	blobs   editor.BlobStore
	catalog *catalog.Catalog
}

func NewHandler(store *repository.PostcardStore, blobs editor.BlobStore, cat *catalog.Catalog) *Handler {
	return &Handler{store: store, blobs: blobs, catalog: cat}
}

func (h *Handler) orchestrator(confirmed bool) *editor.Orchestrator {
	confirm := editor.ConfirmFunc(func(string) bool { return confirmed })
	return editor.NewOrchestrator(h.store, h.blobs, h.catalog, confirm)
}

// GET /curator/postcards — newest first, the admin listing order.
func (h *Handler) List(c *gin.Context) {
	records, err := h.store.ListNewestFirst(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load postcards"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"postcards": records})
}

// POST /curator/postcards
func (h *Handler) Create(c *gin.Context) {
	image, err := imageFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.orchestrator(false).Create(c.Request.Context(), inputFromForm(c), image)
	if err != nil {
		writeEditorError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /curator/postcards/:id
func (h *Handler) Update(c *gin.Context) {
	image, err := imageFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orchestrator(false).Update(c.Request.Context(), c.Param("id"), inputFromForm(c), image); err != nil {
		writeEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Postcard updated"})
}

// DELETE /curator/postcards/:id?confirm=true
func (h *Handler) Delete(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	if err := h.orchestrator(confirmed).Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeEditorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Postcard deleted"})
}

func writeEditorError(c *gin.Context, err error) {
	var verr *editor.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Please fix the form errors before submitting",
			"fields": verr.Fields,
		})
		return
	}
	if errors.Is(err, editor.ErrMissingImage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload an image"})
		return
	}
	if errors.Is(err, editor.ErrNotConfirmed) {
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": "Deletion must be confirmed"})
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Postcard not found"})
		return
	}

	var cerr *editor.CollaboratorError
	if errors.As(err, &cerr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": cerr.Notice()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save postcard"})
}
