// Package audio stages uploaded audio for transcription: container
// conversion through ffmpeg and duration decoding of the canonical wav.
package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var supportedExt = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".m4a":  true,
	".mp4":  true,
	".mpeg": true,
	".mpga": true,
	".webm": true,
}

// Supported reports whether the file extension names an accepted container.
func Supported(filename string) bool {
	return supportedExt[strings.ToLower(filepath.Ext(filename))]
}

// CheckFFmpeg verifies the ffmpeg binary is reachable.
func CheckFFmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found on PATH: %w", err)
	}
	return nil
}

// ConvertToWav re-encodes an uploaded payload to mono 16 kHz wav, the one
// container the rest of the pipeline works with. The input and output are
// staged through uniquely named scratch files in the OS temp dir; both are
// removed on every exit path, so concurrent runs never collide or leak.
func ConvertToWav(ctx context.Context, data []byte, ext string) ([]byte, error) {
	id := uuid.NewString()
	in := filepath.Join(os.TempDir(), id+ext)
	out := filepath.Join(os.TempDir(), id+".wav")

	if err := os.WriteFile(in, data, 0o600); err != nil {
		return nil, fmt.Errorf("staging audio: %w", err)
	}
	defer os.Remove(in)
	defer os.Remove(out)

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", in,
		"-ac", "1",
		"-ar", "16000",
		"-y",
		out,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("converting audio: %w: %s", err, tail(output, 400))
	}

	wav, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("reading converted audio: %w", err)
	}
	return wav, nil
}

func tail(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
