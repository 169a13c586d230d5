package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sheetcal/app/tasks"
)

func NewHandler(store *tasks.Store, scheduler tasks.TaskSchedulerInterface,
	newBuild func() tasks.TaskInterface) *Handler {
	return &Handler{
		store:     store,
		scheduler: scheduler,
		newBuild:  newBuild,
	}
}

func (h *Handler) GetCalendar(c *gin.Context) {
	slug := strings.TrimSuffix(c.Param("slug"), ".ics")
	if slug == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	doc, ok := h.store.Get(slug)
	if !ok {
		slog.Error("Calendar not found", "slug", slug)
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Content-Type", "text/calendar; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+doc.Slug+`.ics"`)
	c.Header("X-Calendar-Events", strconv.Itoa(doc.Events))

	c.String(http.StatusOK, doc.Body)
}

func (h *Handler) GetHealth(c *gin.Context) {
	_, builtAt := h.store.Stats()

	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"calendars": len(h.store.List()),
	}
	if !builtAt.IsZero() {
		health["last_build_at"] = builtAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, builtAt := h.store.Stats()

	docs := h.store.List()
	calendars := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		calendars = append(calendars, map[string]interface{}{
			"name":     doc.Name,
			"slug":     doc.Slug,
			"events":   doc.Events,
			"combined": doc.Combined,
		})
	}

	response := map[string]interface{}{
		"rows":             stats.Total,
		"events":           stats.Built,
		"dropped_no_title": stats.DroppedNoTitle,
		"dropped_bad_date": stats.DroppedBadDate,
		"dropped_bad_time": stats.DroppedBadTime,
		"calendars":        calendars,
	}
	if !builtAt.IsZero() {
		response["last_build_at"] = builtAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) APIRebuild(c *gin.Context) {
	if err := h.scheduler.EnqueueTask(h.newBuild()); err != nil {
		slog.Error("Failed to enqueue rebuild", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Rebuild could not be scheduled"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "rebuild scheduled"})
}
