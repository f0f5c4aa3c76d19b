// Package pipeline sequences one meeting-processing run: transcription,
// duration estimation, parameter selection, analysis, title extraction.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nvoss/meetnotes/internal/audio"
	"github.com/nvoss/meetnotes/internal/config"
	"github.com/nvoss/meetnotes/internal/meeting"
	"github.com/nvoss/meetnotes/internal/providers/llm"
	"github.com/nvoss/meetnotes/internal/providers/stt"
)

// Stage names one state of a pipeline run.
type Stage string

const (
	StageIdle         Stage = "Idle"
	StageTranscribing Stage = "Transcribing"
	StageAnalyzing    Stage = "Analyzing"
	StageComplete     Stage = "Complete"
	StageErrored      Stage = "Errored"
)

// StageError tags a failure with the stage it happened in. Callers branch on
// the stage to decide which artifacts they can still show.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", strings.ToLower(string(e.Stage)), e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Options are the per-run knobs supplied by the caller.
type Options struct {
	Language string
	Mode     meeting.Mode
	Strategy meeting.Strategy
}

// Result bundles everything a run produced. On failure it still carries the
// artifacts obtained before the failing stage, so the caller can show what
// succeeded and report what failed.
type Result struct {
	Stage      Stage
	Title      string
	Duration   time.Duration
	Transcript meeting.Transcript
	Params     meeting.Params
	Report     string
}

// Pipeline holds the configured collaborators. It carries no per-run state;
// every Run is an independent pass through the state machine, so one Pipeline
// value may serve concurrent requests.
type Pipeline struct {
	cfg *config.Config
	stt stt.Provider
	llm llm.Provider
	log *logrus.Logger

	// conversion is injectable for tests; defaults to the ffmpeg path
	convert func(ctx context.Context, data []byte, ext string) ([]byte, error)
}

func New(cfg *config.Config, sttProv stt.Provider, llmProv llm.Provider, log *logrus.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		stt:     sttProv,
		llm:     llmProv,
		log:     log,
		convert: audio.ConvertToWav,
	}
}

// Run executes one full pass: Idle -> Transcribing -> Analyzing -> Complete,
// or Errored from either active stage. No stage is re-entered.
func (p *Pipeline) Run(ctx context.Context, data []byte, filename string, opts Options) (*Result, error) {
	res := &Result{Stage: StageIdle}
	if opts.Language == "" {
		opts.Language = p.cfg.Language
	}
	if opts.Mode == "" {
		opts.Mode = meeting.ModeFlat
	}
	if opts.Strategy == "" {
		opts.Strategy = meeting.StrategyDuration
	}

	log := p.log.WithFields(logrus.Fields{
		"filename": filepath.Base(filename),
		"bytes":    len(data),
		"mode":     opts.Mode,
	})

	// Transcribing
	res.Stage = StageTranscribing
	tctx, cancel := context.WithTimeout(ctx, p.cfg.TranscribeTimeout)
	defer cancel()

	ext := strings.ToLower(filepath.Ext(filename))
	wav, err := p.convert(tctx, data, ext)
	if err != nil {
		res.Stage = StageErrored
		return res, &StageError{Stage: StageTranscribing, Err: err}
	}

	raw, err := p.stt.Transcribe(tctx, wav, opts.Language)
	if err != nil {
		res.Stage = StageErrored
		return res, &StageError{Stage: StageTranscribing, Err: err}
	}
	res.Transcript = meeting.NewTranscript(raw)

	// Transcribing -> Analyzing: fix the duration estimate. The decoded wav
	// is authoritative; if its header cannot be read the word count stands in.
	audioDur, derr := audio.WavDuration(wav)
	if derr != nil {
		audioDur = 0
	}
	res.Duration = meeting.EstimateDuration(audioDur, raw)
	log.WithFields(logrus.Fields{
		"words":            res.Transcript.Words(),
		"duration_seconds": int(res.Duration.Seconds()),
	}).Info("transcription complete")

	// Analyzing
	res.Stage = StageAnalyzing
	res.Params = meeting.Select(opts.Strategy, res.Duration, int64(len(data)), res.Transcript.Words(), opts.Mode)
	prompt := meeting.BuildPrompt(res.Transcript, res.Params)

	actx, cancel := context.WithTimeout(ctx, p.cfg.AnalyzeTimeout)
	defer cancel()

	report, err := p.llm.Complete(actx, meeting.SystemInstruction, prompt)
	if err != nil {
		res.Stage = StageErrored
		return res, &StageError{Stage: StageAnalyzing, Err: err}
	}
	res.Report = report
	res.Title = meeting.ExtractTitle(report)

	res.Stage = StageComplete
	log.WithFields(logrus.Fields{
		"tier":  res.Params.Tier,
		"title": res.Title,
	}).Info("analysis complete")
	return res, nil
}
