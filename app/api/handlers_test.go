package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"sheetcal/app/calendar"
	"sheetcal/app/tasks"
)

type stubScheduler struct {
	enqueued int
	err      error
}

func (s *stubScheduler) Start() {}
func (s *stubScheduler) Stop()  {}

func (s *stubScheduler) EnqueueTask(task tasks.TaskInterface) error {
	if s.err != nil {
		return s.err
	}
	s.enqueued++
	return nil
}

type noopTask struct{ tasks.Task }

func (t *noopTask) Execute(ctx context.Context) error { return nil }

func newTestServer(scheduler *stubScheduler, apiKey string) (*gin.Engine, *tasks.Store) {
	gin.SetMode(gin.TestMode)

	store := tasks.NewStore()
	store.Update([]tasks.Document{
		{Name: "Test Calendar: Exams", Slug: "exams", Body: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", Events: 2},
		{Name: "Test Calendar", Slug: "all", Body: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", Events: 3, Combined: true},
	}, calendar.Stats{Total: 4, Built: 3, DroppedBadDate: 1})

	newBuild := func() tasks.TaskInterface {
		return &noopTask{Task: tasks.NewTask(tasks.TaskTypeBuildCalendars)}
	}

	handler := NewHandler(store, scheduler, newBuild)
	return NewServer(handler, apiKey), store
}

func TestGetCalendar(t *testing.T) {
	server, _ := newTestServer(&stubScheduler{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/calendars/exams.ics", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got: %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar") {
		t.Errorf("Expected text/calendar content type, got: %s", w.Header().Get("Content-Type"))
	}
	if w.Header().Get("X-Calendar-Events") != "2" {
		t.Errorf("Expected event count header, got: %s", w.Header().Get("X-Calendar-Events"))
	}
	if !strings.Contains(w.Body.String(), "BEGIN:VCALENDAR") {
		t.Error("Expected calendar body")
	}
}

func TestGetCalendarWithoutExtension(t *testing.T) {
	server, _ := newTestServer(&stubScheduler{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/calendars/all", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for extensionless slug, got: %d", w.Code)
	}
}

func TestGetCalendarNotFound(t *testing.T) {
	server, _ := newTestServer(&stubScheduler{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/calendars/nope.ics", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got: %d", w.Code)
	}
}

func TestGetStats(t *testing.T) {
	server, _ := newTestServer(&stubScheduler{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got: %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"dropped_bad_date":1`) {
		t.Errorf("Expected dropped-row counts in stats, got: %s", body)
	}
}

func TestRebuildRequiresAPIKey(t *testing.T) {
	scheduler := &stubScheduler{}
	server, _ := newTestServer(scheduler, "secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/rebuild", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without key, got: %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/rebuild", nil)
	req.Header.Set("X-API-Key", "secret")
	server.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected 202 with key, got: %d", w.Code)
	}
	if scheduler.enqueued != 1 {
		t.Errorf("Expected one rebuild enqueued, got: %d", scheduler.enqueued)
	}
}
