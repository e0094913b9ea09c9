package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sdk-formatter/internal/batch"
	"sdk-formatter/internal/config"
	"sdk-formatter/internal/host"
	"sdk-formatter/internal/session"
	"sdk-formatter/internal/watch"
)

// Execute runs the CLI application.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// hostFlags are shared by every command that runs a session.
type hostFlags struct {
	lines string
	out   string
	dir   string
	yes   bool
	no    bool
	print bool
}

// app carries state shared by all commands of one invocation.
type app struct {
	cfg *config.Config
}

// NewRootCmd builds the command tree. Exposed for tests.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "sdk-formatter",
		Short: "Convert reverse-engineering class notes into C# offset structs",
		Long: `Reads notes made of "[Class] Name : Base" and "[offset][T] field : type" lines
and emits "public readonly partial struct" blocks of "public const uint" offsets
inside a "namespace SDK" wrapper.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), os.Getenv("LOG_LEVEL"))
			a.cfg = config.Load()
			setupLogging(cmd.ErrOrStderr(), a.cfg.LogLevel)
		},
	}

	rootCmd.AddCommand(a.selectionCmd())
	rootCmd.AddCommand(a.individualCmd())
	rootCmd.AddCommand(a.documentCmd())
	rootCmd.AddCommand(a.batchCmd())
	rootCmd.AddCommand(a.watchCmd())

	return rootCmd
}

func setupLogging(w io.Writer, levelName string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})

	level, err := zerolog.ParseLevel(levelName)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func (a *app) selectionCmd() *cobra.Command {
	var hf hostFlags
	cmd := &cobra.Command{
		Use:   "selection <notes-file>",
		Short: "Merge the selected lines into the master SDK file",
		Long: `Formats the selected line range and appends it to the master SDK file
(custom_SDK.cs by default). An existing declaration of the same class is
replaced only after confirmation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSession(cmd, args[0], hf, func(ctx context.Context, s *session.Session) (session.Outcome, error) {
				return s.ExportToMasterSDK(ctx)
			})
		},
	}
	addHostFlags(cmd, &hf, true)
	return cmd
}

func (a *app) individualCmd() *cobra.Command {
	var hf hostFlags
	cmd := &cobra.Command{
		Use:   "individual <notes-file>",
		Short: "Write the selected lines to their own SDK file",
		Long: `Formats the selected line range into a complete file named after the last
class, e.g. Player_Offsets.cs. Use --out to choose another path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSession(cmd, args[0], hf, func(ctx context.Context, s *session.Session) (session.Outcome, error) {
				return s.ExportAsIndividualFile(ctx)
			})
		},
	}
	addHostFlags(cmd, &hf, true)
	cmd.Flags().StringVar(&hf.out, "out", "", "Output path (default: <dir>/<Class>_Offsets.cs)")
	return cmd
}

func (a *app) documentCmd() *cobra.Command {
	var hf hostFlags
	cmd := &cobra.Command{
		Use:   "document <notes-file>",
		Short: "Export the entire notes file to the master SDK file",
		Long: `Converts every class in the notes file, skipping repeated class names, and
overwrites the master SDK file with the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSession(cmd, args[0], hf, func(ctx context.Context, s *session.Session) (session.Outcome, error) {
				return s.ExportEntireFile(ctx)
			})
		},
	}
	addHostFlags(cmd, &hf, false)
	return cmd
}

func (a *app) batchCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "batch <input-dir>",
		Short: "Export every notes file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()

			cfg := a.cfg
			if outDir == "" {
				outDir = args[0]
			}

			report, err := batch.Run(ctx, batch.Options{
				InputDir:   args[0],
				OutputDir:  outDir,
				Extensions: cfg.NotesExtensions,
				Workers:    cfg.WorkerCount,
			})
			if err != nil {
				return err
			}
			if report.Failed > 0 {
				return fmt.Errorf("%d of %d files failed", report.Failed, len(report.Files))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default: input directory)")
	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	var hf hostFlags
	cmd := &cobra.Command{
		Use:   "watch <notes-file>",
		Short: "Re-export the entire notes file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()

			s, err := a.newSession(cmd, args[0], hf)
			if err != nil {
				return err
			}

			w, err := watch.New(args[0], 0, func(ctx context.Context) error {
				_, err := s.ExportEntireFile(ctx)
				return err
			})
			if err != nil {
				return err
			}
			return w.Run(ctx)
		},
	}
	addHostFlags(cmd, &hf, false)
	return cmd
}

func addHostFlags(cmd *cobra.Command, hf *hostFlags, selection bool) {
	cmd.Flags().StringVar(&hf.dir, "dir", "", "Output directory (default: SDK_OUTPUT_DIR or the notes file's directory)")
	cmd.Flags().BoolVar(&hf.print, "print", false, "Print the written file to stdout")
	if !selection {
		return
	}
	cmd.Flags().StringVar(&hf.lines, "lines", "", "Selected line range, e.g. 3:10, 5: or :20 (default: whole file)")
	cmd.Flags().BoolVarP(&hf.yes, "yes", "y", false, "Replace existing declarations without asking")
	cmd.Flags().BoolVar(&hf.no, "no", false, "Never replace existing declarations")
	cmd.MarkFlagsMutuallyExclusive("yes", "no")
}

type sessionFunc func(ctx context.Context, s *session.Session) (session.Outcome, error)

func (a *app) runSession(cmd *cobra.Command, notesPath string, hf hostFlags, run sessionFunc) error {
	ctx, cancel := setupContext()
	defer cancel()

	s, err := a.newSession(cmd, notesPath, hf)
	if err != nil {
		return err
	}

	out, err := run(ctx, s)
	if err != nil {
		log.Error().Err(err).Str("kind", session.KindOf(err).String()).Msg("Export failed")
		return err
	}
	if out.NoOp {
		log.Info().Str("reason", out.Reason.Error()).Msg("Nothing written")
	}
	return nil
}

func (a *app) newSession(cmd *cobra.Command, notesPath string, hf hostFlags) (*session.Session, error) {
	cfg := *a.cfg
	if hf.dir != "" {
		cfg.OutputDir = hf.dir
	}

	from, to, err := host.ParseRange(hf.lines)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(notesPath)
	if err != nil {
		return nil, fmt.Errorf("resolve notes path: %w", err)
	}
	source := &host.FileSource{Path: abs, From: from, To: to}

	sink := &host.LogSink{}
	if hf.print {
		sink.Out = cmd.OutOrStdout()
	}

	saveDir := cfg.OutputDir
	if saveDir == "" {
		saveDir = source.Dir()
	}

	return session.New(&cfg, session.Host{
		Source: source,
		Sink:   sink,
		Decide: decider(hf),
		Save:   &host.FixedSave{Dir: saveDir, Path: hf.out},
	})
}

func decider(hf hostFlags) host.DecisionDelegate {
	switch {
	case hf.yes:
		return host.FixedAnswer(true)
	case hf.no:
		return host.FixedAnswer(false)
	default:
		return host.NewSurveyConfirm(term.IsTerminal(int(os.Stdin.Fd())))
	}
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.Warn().Msg("Received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
