package host

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// LogSink reports opened files through the logger. When Out is set the
// file's contents are copied to it as well.
type LogSink struct {
	Out io.Writer
}

var _ DocumentSink = (*LogSink)(nil)

func (s *LogSink) Open(path string) error {
	log.Info().Str("path", path).Msg("SDK file ready")
	if s.Out == nil {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open sdk file for display: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(s.Out, f); err != nil {
		return fmt.Errorf("display sdk file: %w", err)
	}
	return nil
}

func (s *LogSink) SetLanguageHint(path, tag string) error {
	log.Debug().Str("path", path).Str("language", tag).Msg("Language hint")
	return nil
}
