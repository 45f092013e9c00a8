// Package video stitches rendered frames into an MP4 using the system
// ffmpeg binary.
package video

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/render"
)

// Encode assembles the frame sequence in framesDir into outputPath at the
// given frame rate. ffmpeg must be on PATH; its stderr tail is folded into
// the returned error on failure.
func Encode(ctx context.Context, framesDir, outputPath string, fps int, logger zerolog.Logger) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	pattern := filepath.Join(framesDir, render.FramePattern)
	args := []string{
		"-y",
		"-framerate", strconv.Itoa(fps),
		"-i", pattern,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		outputPath,
	}

	logger.Info().Str("output", outputPath).Int("fps", fps).Msg("encoding video")

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w: %s", err, stderrTail(stderr.String()))
	}
	return nil
}

// stderrTail keeps the last few lines of ffmpeg output, which is where it
// reports the actual failure.
func stderrTail(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return strings.Join(lines, "; ")
}
