package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New creates a configured zerolog logger. Human-readable output uses the
// console writer; otherwise entries are JSON lines.
func New(level string, human bool, w io.Writer) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}

	parsed := zerolog.InfoLevel
	if level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Nop(), err
		}
		parsed = l
	}

	var out io.Writer = w
	if human {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.RFC3339
		out = console
	}

	return zerolog.New(out).Level(parsed).With().Timestamp().Logger(), nil
}
