package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newExportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewExportHandler()
	r := gin.New()
	r.POST("/api/exports/transcript", h.Transcript)
	r.POST("/api/exports/notes", h.Notes)
	return r
}

func TestExportTranscript(t *testing.T) {
	r := newExportRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/exports/transcript", strings.NewReader("hello transcript"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "transcription.txt") {
		t.Errorf("Content-Disposition = %q", got)
	}
	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Errorf("Content-Type = %q", got)
	}
	if w.Body.String() != "hello transcript" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestExportNotes(t *testing.T) {
	r := newExportRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/exports/notes", strings.NewReader("# Notes"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "meeting_notes.md") {
		t.Errorf("Content-Disposition = %q", got)
	}
	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/markdown") {
		t.Errorf("Content-Type = %q", got)
	}
}

func TestExportEmptyBody(t *testing.T) {
	r := newExportRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/exports/notes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
