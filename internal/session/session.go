// Package session runs export commands against an explicit host context.
package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"sdk-formatter/internal/config"
	"sdk-formatter/internal/export"
	"sdk-formatter/internal/format"
	"sdk-formatter/internal/host"
	"sdk-formatter/internal/sdkfile"
	"sdk-formatter/internal/textutil"
)

// Host bundles the capabilities a session needs from its environment.
type Host struct {
	Source host.TextSource
	Sink   host.DocumentSink
	Decide host.DecisionDelegate
	Save   host.SaveTarget
}

// Session holds the configuration and host capabilities for one run of
// export commands. It replaces process-wide plugin state.
type Session struct {
	cfg  *config.Config
	host Host
}

// Outcome reports what an export command did.
type Outcome struct {
	Path     string
	Classes  []string
	Fields   int
	Mode     sdkfile.Mode
	Replaced bool
	// NoOp is true when there was nothing to write or the user backed out.
	NoOp   bool
	Reason error
}

// New creates a session. Every Host capability must be set.
func New(cfg *config.Config, h Host) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("session: nil config")
	}
	if h.Source == nil || h.Sink == nil || h.Decide == nil || h.Save == nil {
		return nil, errors.New("session: incomplete host")
	}
	return &Session{cfg: cfg, host: h}, nil
}

// SDKPath is where the master SDK file lives for the current document.
func (s *Session) SDKPath() string {
	dir := s.cfg.OutputDir
	if dir == "" {
		dir = s.host.Source.Dir()
	}
	return filepath.Join(dir, s.cfg.SDKFileName)
}

// ExportToMasterSDK formats the selection and merges it into the master SDK file.
func (s *Session) ExportToMasterSDK(ctx context.Context) (Outcome, error) {
	sel, err := s.selection()
	if err != nil {
		return noOp(err)
	}

	path := s.SDKPath()
	res, err := sdkfile.Merge(ctx, sel.ClassName, sel.Text, path, s.host.Decide)
	if err != nil {
		if errors.Is(err, sdkfile.ErrReplaceDeclined) {
			log.Info().Str("class", sel.ClassName).Msg("Kept existing definition")
			return noOp(err)
		}
		return Outcome{Path: path}, fmt.Errorf("merge %s into %s: %w", sel.ClassName, path, err)
	}

	log.Info().
		Str("class", sel.ClassName).
		Str("path", path).
		Int("blocks", sel.Blocks).
		Int("fields", sel.Fields).
		Bool("created", res.Created).
		Bool("replaced", res.Replaced).
		Msg("Exported selection to SDK")

	out := Outcome{
		Path:     path,
		Classes:  []string{sel.ClassName},
		Fields:   sel.Fields,
		Mode:     res.Mode,
		Replaced: res.Replaced,
	}
	return out, s.show(path)
}

// ExportAsIndividualFile formats the selection into its own wrapped file.
func (s *Session) ExportAsIndividualFile(ctx context.Context) (Outcome, error) {
	sel, err := s.selection()
	if err != nil {
		return noOp(err)
	}

	suggested := sel.ClassName + s.cfg.IndividualSuffix
	path, ok, err := s.host.Save.SavePath(suggested)
	if err != nil {
		return Outcome{}, fmt.Errorf("choose save path: %w", err)
	}
	if !ok {
		return noOp(ErrSaveCancelled)
	}

	if err := sdkfile.WriteWhole(ctx, path, format.Wrap(sel.Text)); err != nil {
		return Outcome{Path: path}, fmt.Errorf("write %s: %w", path, err)
	}

	log.Info().Str("class", sel.ClassName).Str("path", path).Int("fields", sel.Fields).Msg("Exported selection to file")

	out := Outcome{
		Path:    path,
		Classes: []string{sel.ClassName},
		Fields:  sel.Fields,
		Mode:    sdkfile.ModeWhole,
	}
	return out, s.show(path)
}

// ExportEntireFile converts the whole document and overwrites the master SDK
// file with it. A document without classes still writes the empty wrapper.
func (s *Session) ExportEntireFile(ctx context.Context) (Outcome, error) {
	text, err := s.host.Source.DocumentText()
	if err != nil {
		return Outcome{}, fmt.Errorf("read document: %w", err)
	}

	doc, err := export.Document(text)
	if err != nil {
		return noOp(err)
	}

	path := s.SDKPath()
	if err := sdkfile.WriteWhole(ctx, path, doc.Text); err != nil {
		return Outcome{Path: path}, fmt.Errorf("write %s: %w", path, err)
	}

	evt := log.Info()
	if doc.Count() == 0 {
		evt = log.Warn()
	}
	evt.Int("classes", doc.Count()).Int("fields", doc.Fields).Str("path", path).
		Msgf("Successfully exported %d classes to %s", doc.Count(), s.cfg.SDKFileName)

	out := Outcome{
		Path:    path,
		Classes: doc.Classes,
		Fields:  doc.Fields,
		Mode:    sdkfile.ModeWhole,
	}
	return out, s.show(path)
}

func (s *Session) selection() (export.SelectionResult, error) {
	text, err := s.host.Source.SelectedText()
	if err != nil {
		return export.SelectionResult{}, fmt.Errorf("read selection: %w", err)
	}
	sel, err := export.Selection(text)
	if err != nil {
		return sel, err
	}
	log.Debug().
		Str("class", sel.ClassName).
		Str("preview", textutil.Truncate(text, 40)).
		Msg("Formatted selection")
	return sel, nil
}

func (s *Session) show(path string) error {
	if err := s.host.Sink.Open(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if err := s.host.Sink.SetLanguageHint(path, s.cfg.LanguageTag); err != nil {
		return fmt.Errorf("set language for %s: %w", path, err)
	}
	return nil
}

// noOp turns a "nothing to do" error into a NoOp outcome. Anything else is
// passed through as a failure.
func noOp(err error) (Outcome, error) {
	if KindOf(err) == KindNoOp {
		log.Warn().Err(err).Msg("Nothing exported")
		return Outcome{NoOp: true, Reason: err}, nil
	}
	return Outcome{}, err
}
