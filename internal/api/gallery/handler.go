package gallery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"archarad-app/internal/catalog"
	"archarad-app/internal/domain/postcards"
	"archarad-app/internal/i18n"
	"archarad-app/internal/viewer"
)

// langCookie persists the visitor's language choice across sessions.
const langCookie = "archarad-language"

const langCookieMaxAge = 365 * 24 * 3600

// Handler serves the public browsing surface: the postcard catalog, viewer
// sessions over it, and the language preference.
type Handler struct {
	catalog *catalog.Catalog
	viewers *viewer.Registry
}

func NewHandler(cat *catalog.Catalog, viewers *viewer.Registry) *Handler {
	return &Handler{catalog: cat, viewers: viewers}
}

// cookieStore adapts the request/response cookie pair to the resolver's
// preference contract.
type cookieStore struct {
	c *gin.Context
}

func (s cookieStore) Load() (string, bool) {
	v, err := s.c.Cookie(langCookie)
	return v, err == nil
}

func (s cookieStore) Save(code string) {
	s.c.SetCookie(langCookie, code, langCookieMaxAge, "/", "", false, false)
}

// resolverFor builds the request's resolver from the cookie preference; an
// explicit ?lang= override wins when it names a supported language.
func resolverFor(c *gin.Context) *i18n.Resolver {
	r := i18n.NewResolver(cookieStore{c: c})
	if lang := c.Query("lang"); lang != "" && i18n.IsSupported(lang) {
		r.SetLanguage(lang)
	}
	return r
}

type cardView struct {
	postcards.Postcard
	LocalizedTitle       string `json:"localized_title"`
	LocalizedDescription string `json:"localized_description"`
}

// GET /postcards
func (h *Handler) ListPostcards(c *gin.Context) {
	if err := h.catalog.Load(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to load postcards"})
		return
	}

	r := resolverFor(c)
	records := h.catalog.Snapshot()
	out := make([]cardView, 0, len(records))
	for _, p := range records {
		out = append(out, cardView{
			Postcard:             p,
			LocalizedTitle:       r.Text(p.Title),
			LocalizedDescription: r.Text(p.Description),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"lang":      r.Lang(),
		"postcards": out,
	})
}

// GET /ui/strings
func (h *Handler) UIStrings(c *gin.Context) {
	r := resolverFor(c)
	c.JSON(http.StatusOK, gin.H{
		"lang":    r.Lang(),
		"strings": r.Strings(),
	})
}

// POST /ui/language
func (h *Handler) SetLanguage(c *gin.Context) {
	var body struct {
		Lang string `json:"lang" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r := i18n.NewResolver(cookieStore{c: c})
	if !r.SetLanguage(body.Lang) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language code"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lang": r.Lang()})
}

// POST /viewer/sessions
func (h *Handler) OpenViewer(c *gin.Context) {
	var body struct {
		PostcardID string `json:"postcard_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, ok := h.viewers.Open(body.PostcardID)
	if !ok {
		// LookupMiss: the id is not in the current catalog ordering.
		c.JSON(http.StatusNotFound, gin.H{"error": "Postcard not found in the current gallery"})
		return
	}
	c.JSON(http.StatusCreated, st)
}

// GET /viewer/sessions/:id
func (h *Handler) ViewerState(c *gin.Context) {
	st, err := h.viewers.Get(c.Param("id"))
	if err != nil {
		viewerError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /viewer/sessions/:id/prev
func (h *Handler) ViewerPrev(c *gin.Context) {
	st, err := h.viewers.Prev(c.Param("id"))
	if err != nil {
		viewerError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /viewer/sessions/:id/next
func (h *Handler) ViewerNext(c *gin.Context) {
	st, err := h.viewers.Next(c.Param("id"))
	if err != nil {
		viewerError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /viewer/sessions/:id/close
func (h *Handler) ViewerClose(c *gin.Context) {
	st, err := h.viewers.Close(c.Param("id"))
	if err != nil {
		viewerError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /viewer/sessions/:id/key
func (h *Handler) ViewerKey(c *gin.Context) {
	var body struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.viewers.Key(c.Param("id"), viewer.Key(body.Key))
	if err != nil {
		viewerError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func viewerError(c *gin.Context, err error) {
	if errors.Is(err, viewer.ErrNoSession) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Viewer session not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Viewer error"})
}
