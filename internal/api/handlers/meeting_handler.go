package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nvoss/meetnotes/internal/audio"
	"github.com/nvoss/meetnotes/internal/config"
	"github.com/nvoss/meetnotes/internal/meeting"
	"github.com/nvoss/meetnotes/internal/pipeline"
	"github.com/nvoss/meetnotes/internal/utils"
)

// runner is what the handler needs from the pipeline.
type runner interface {
	Run(ctx context.Context, data []byte, filename string, opts pipeline.Options) (*pipeline.Result, error)
}

type MeetingHandler struct {
	cfg  *config.Config
	pipe runner
	log  *logrus.Logger
}

func NewMeetingHandler(cfg *config.Config, pipe *pipeline.Pipeline, log *logrus.Logger) *MeetingHandler {
	return &MeetingHandler{cfg: cfg, pipe: pipe, log: log}
}

// processResponse is the success payload of one pipeline run.
type processResponse struct {
	Title           string `json:"title"`
	DurationSeconds int    `json:"duration_seconds"`
	Tier            string `json:"tier"`
	ChapterCount    int    `json:"chapter_count,omitempty"`
	Transcript      string `json:"transcript"`
	Analysis        string `json:"analysis"`
}

// processFailure reports a failed run along with whatever artifacts the run
// produced before the failing stage.
type processFailure struct {
	Stage           string `json:"stage"`
	Message         string `json:"message"`
	Transcript      string `json:"transcript,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

func (h *MeetingHandler) Process(c *gin.Context) {
	const op = "MeetingHandler.Process"

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "missing multipart field 'file'", err))
		return
	}
	if !audio.Supported(fh.Filename) {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "unsupported audio format (use wav, mp3, m4a, mp4, mpeg, mpga or webm)", nil))
		return
	}
	if fh.Size <= 0 || fh.Size > h.cfg.MaxUploadBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file is empty or exceeds the upload limit", nil))
		return
	}

	opts := pipeline.Options{Language: c.PostForm("language")}
	switch mode := c.PostForm("mode"); mode {
	case "", string(meeting.ModeFlat):
		opts.Mode = meeting.ModeFlat
	case string(meeting.ModeChapters):
		opts.Mode = meeting.ModeChapters
	default:
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "mode must be 'flat' or 'chapters'", nil))
		return
	}
	switch strategy := c.PostForm("strategy"); strategy {
	case "", string(meeting.StrategyDuration):
		opts.Strategy = meeting.StrategyDuration
	case string(meeting.StrategySize):
		opts.Strategy = meeting.StrategySize
	default:
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "strategy must be 'duration' or 'size'", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to read upload", err))
		return
	}

	res, err := h.pipe.Run(c.Request.Context(), data, fh.Filename, opts)
	if err != nil {
		h.log.WithError(err).Warn("pipeline run failed")
		c.JSON(http.StatusBadGateway, failureBody(res, err))
		return
	}

	c.JSON(http.StatusOK, processResponse{
		Title:           res.Title,
		DurationSeconds: int(res.Duration.Seconds()),
		Tier:            string(res.Params.Tier),
		ChapterCount:    res.Params.ChapterCount,
		Transcript:      res.Transcript.Formatted,
		Analysis:        res.Report,
	})
}

func failureBody(res *pipeline.Result, err error) processFailure {
	body := processFailure{Stage: string(pipeline.StageErrored), Message: err.Error()}

	var se *pipeline.StageError
	if errors.As(err, &se) {
		body.Stage = string(se.Stage)
	}
	if res != nil && res.Transcript.Raw != "" {
		body.Transcript = res.Transcript.Formatted
		body.DurationSeconds = int(res.Duration.Seconds())
	}
	return body
}
