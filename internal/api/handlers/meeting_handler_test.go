package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nvoss/meetnotes/internal/config"
	"github.com/nvoss/meetnotes/internal/meeting"
	"github.com/nvoss/meetnotes/internal/pipeline"
)

type fakeRunner struct {
	res  *pipeline.Result
	err  error
	opts pipeline.Options // captured
}

func (f *fakeRunner) Run(ctx context.Context, data []byte, filename string, opts pipeline.Options) (*pipeline.Result, error) {
	f.opts = opts
	return f.res, f.err
}

func newTestRouter(run *fakeRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := logrus.New()
	l.SetOutput(io.Discard)

	h := &MeetingHandler{
		cfg:  &config.Config{MaxUploadBytes: 1 << 20},
		pipe: run,
		log:  l,
	}

	r := gin.New()
	r.POST("/api/meetings", h.Process)
	return r
}

func multipartUpload(t *testing.T, filename string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("fake audio bytes")); err != nil {
		t.Fatal(err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return body, mw.FormDataContentType()
}

func TestProcessSuccess(t *testing.T) {
	run := &fakeRunner{res: &pipeline.Result{
		Stage:      pipeline.StageComplete,
		Title:      "Planning Sync",
		Duration:   11 * time.Minute,
		Transcript: meeting.NewTranscript("We met. We planned. We shipped."),
		Params:     meeting.Params{Tier: meeting.TierMedium, Mode: meeting.ModeChapters, ChapterCount: 3},
		Report:     "## Suggested Title: Planning Sync",
	}}
	r := newTestRouter(run)

	body, ct := multipartUpload(t, "meeting.mp3", map[string]string{"mode": "chapters"})
	req := httptest.NewRequest(http.MethodPost, "/api/meetings", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp processResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Title != "Planning Sync" {
		t.Errorf("title = %q", resp.Title)
	}
	if resp.DurationSeconds != 660 {
		t.Errorf("duration_seconds = %d, want 660", resp.DurationSeconds)
	}
	if resp.Tier != "medium" || resp.ChapterCount != 3 {
		t.Errorf("tier/chapters = %q/%d", resp.Tier, resp.ChapterCount)
	}
	if run.opts.Mode != meeting.ModeChapters {
		t.Errorf("mode forwarded = %q, want chapters", run.opts.Mode)
	}
}

func TestProcessAnalysisFailureReturnsTranscript(t *testing.T) {
	stageErr := &pipeline.StageError{Stage: pipeline.StageAnalyzing, Err: errors.New("model down")}
	run := &fakeRunner{
		res: &pipeline.Result{
			Stage:      pipeline.StageErrored,
			Duration:   2 * time.Minute,
			Transcript: meeting.NewTranscript("We met. That is all."),
		},
		err: stageErr,
	}
	r := newTestRouter(run)

	body, ct := multipartUpload(t, "meeting.wav", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/meetings", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}

	var resp processFailure
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Stage != string(pipeline.StageAnalyzing) {
		t.Errorf("stage = %q, want Analyzing", resp.Stage)
	}
	if resp.Transcript == "" {
		t.Error("transcript produced before the failure must be returned")
	}
}

func TestProcessValidation(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		fields   map[string]string
	}{
		{"unsupported extension", "notes.txt", nil},
		{"bad mode", "a.mp3", map[string]string{"mode": "fancy"}},
		{"bad strategy", "a.mp3", map[string]string{"strategy": "vibes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeRunner{res: &pipeline.Result{}})
			body, ct := multipartUpload(t, tt.filename, tt.fields)
			req := httptest.NewRequest(http.MethodPost, "/api/meetings", body)
			req.Header.Set("Content-Type", ct)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestProcessMissingFile(t *testing.T) {
	r := newTestRouter(&fakeRunner{})
	req := httptest.NewRequest(http.MethodPost, "/api/meetings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
