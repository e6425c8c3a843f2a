package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"portfolio-cms/pkg/models"
	"portfolio-cms/pkg/services"
)

// ContentController exposes the content facade over the admin API. It also
// carries the editor's per-section save guard: while a save for a section is
// in flight, a second save for the same section is refused.
type ContentController struct {
	Service *services.ContentService

	mu     sync.Mutex
	saving map[string]bool
}

func NewContentController(service *services.ContentService) *ContentController {
	return &ContentController{
		Service: service,
		saving:  make(map[string]bool),
	}
}

// AdminDashboard returns the editor payload: every section in stable order,
// each field paired with its widget kind.
func (ct *ContentController) AdminDashboard(c *gin.Context) {
	snap := ct.Service.Snapshot()

	type editorField struct {
		models.ContentField
		Widget string `json:"widget"`
	}
	type editorSection struct {
		Name   string        `json:"name"`
		Fields []editorField `json:"fields"`
	}

	sections := make([]editorSection, 0, len(snap))
	for _, name := range snap.Sections() {
		fields := make([]editorField, 0, len(snap[name]))
		for _, f := range snap[name] {
			fields = append(fields, editorField{ContentField: f, Widget: f.Type.Widget()})
		}
		sections = append(sections, editorSection{Name: name, Fields: fields})
	}

	c.JSON(http.StatusOK, gin.H{
		"page":      "admin",
		"sections":  sections,
		"isLoading": ct.Service.Loading(),
	})
}

func (ct *ContentController) GetContent(c *gin.Context) {
	errMsg := ""
	if err := ct.Service.Err(); err != nil {
		errMsg = err.Error()
	}
	c.JSON(http.StatusOK, gin.H{
		"content":   ct.Service.Snapshot(),
		"isLoading": ct.Service.Loading(),
		"error":     errMsg,
	})
}

func (ct *ContentController) GetField(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing key parameter"})
		return
	}
	field, ok := ct.Service.FindByKey(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Field not found", "key": key})
		return
	}
	c.JSON(http.StatusOK, field)
}

func (ct *ContentController) GetSection(c *gin.Context) {
	c.JSON(http.StatusOK, ct.Service.FindBySection(c.Param("name")))
}

// SaveSection commits a section's buffered field list, one UpdateField per
// entry in order. The in-flight guard is cleared on every exit path.
func (ct *ContentController) SaveSection(c *gin.Context) {
	section := c.Param("name")

	var fields []models.ContentField
	if err := c.BindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	for _, f := range fields {
		if f.Section != section {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Field does not belong to this section", "key": f.Key,
			})
			return
		}
	}

	ct.mu.Lock()
	if ct.saving[section] {
		ct.mu.Unlock()
		c.JSON(http.StatusConflict, gin.H{"error": "Save already in progress", "section": section})
		return
	}
	ct.saving[section] = true
	ct.mu.Unlock()
	defer func() {
		ct.mu.Lock()
		delete(ct.saving, section)
		ct.mu.Unlock()
	}()

	for _, f := range fields {
		if err := ct.Service.UpdateField(f); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, services.ErrDuplicateKey) {
				status = http.StatusConflict
			}
			c.JSON(status, gin.H{"error": err.Error(), "key": f.Key})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved", "section": section, "count": len(fields)})
}

type revertRequest struct {
	Confirm bool `json:"confirm"`
}

// Revert restores the default snapshot. The confirm flag is the explicit
// confirmation step the operation requires.
func (ct *ContentController) Revert(c *gin.Context) {
	var req revertRequest
	if err := c.BindJSON(&req); err != nil || !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Confirmation required"})
		return
	}
	if err := ct.Service.RevertToDefault(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revert content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reverted"})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Page not found", "path": c.Request.URL.Path})
}
