// Package main provides the CLI entrypoint for safemate.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/safemate/internal/app"
	"github.com/verte-zerg/safemate/internal/config"
	"github.com/verte-zerg/safemate/internal/generator"
	"github.com/verte-zerg/safemate/internal/history"
	"github.com/verte-zerg/safemate/internal/logger"
	"github.com/verte-zerg/safemate/internal/model"
	"github.com/verte-zerg/safemate/internal/store"
	"github.com/verte-zerg/safemate/internal/theme"
	"github.com/verte-zerg/safemate/internal/tui"
)

const (
	maxCLILength = 1024
	defaultCount = 1
)

var (
	genLength           int
	genUpper            bool
	genLower            bool
	genNumbers          bool
	genSymbols          bool
	genExcludeSimilar   bool
	genExcludeAmbiguous bool

	generateCount int
	generateSave  bool
	generateCopy  bool

	exportOut string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "safemate",
		Short:         "Terminal password generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTUICmd,
	}

	addGeneratorFlags(rootCmd)

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newThemeCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addGeneratorFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&genLength, "length", app.DefaultLength, "password length")
	cmd.Flags().BoolVar(&genUpper, "upper", true, "include uppercase letters")
	cmd.Flags().BoolVar(&genLower, "lower", true, "include lowercase letters")
	cmd.Flags().BoolVar(&genNumbers, "numbers", true, "include numbers")
	cmd.Flags().BoolVar(&genSymbols, "symbols", true, "include symbols")
	cmd.Flags().BoolVar(&genExcludeSimilar, "exclude-similar", false, "exclude similar characters (0 O o l 1 I)")
	cmd.Flags().BoolVar(&genExcludeAmbiguous, "exclude-ambiguous", false, "exclude ambiguous characters (\" ' ` ;)")
}

// session bundles everything opened from disk for one command run.
type session struct {
	fileCfg config.FileConfig
	store   *store.Store
	history *history.History
	theme   *theme.Preference
	log     *logger.Logger
	closers []func() error
}

func openSession(ctx context.Context, role string) (*session, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	s := &session{fileCfg: fileCfg}

	log, closeLog, err := logger.NewFileLogger(config.DefaultLogPath(), role)
	if err != nil {
		logErrf("failed to open log file, logging disabled: %v\n", err)
		log = logger.Nop()
	} else {
		s.closers = append(s.closers, closeLog)
	}
	s.log = log

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		s.close()
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	s.store = st
	s.closers = append([]func() error{st.Close}, s.closers...)

	s.history, err = history.Load(ctx, st)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	s.theme, err = theme.Load(ctx, st)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	return s, nil
}

func (s *session) close() {
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			logErrf("failed to close: %v\n", err)
		}
	}
	s.closers = nil
}

func (s *session) exportPath() string {
	if exportOut != "" {
		return exportOut
	}
	if s.fileCfg.Export.Path != nil && *s.fileCfg.Export.Path != "" {
		return *s.fileCfg.Export.Path
	}
	return history.DefaultExportName
}

func resolveConfig(cmd *cobra.Command, fileCfg config.FileConfig) (model.Config, error) {
	gc := fileCfg.Generator
	applyIntConfig(cmd, "length", &genLength, gc.Length)
	applyBoolConfig(cmd, "upper", &genUpper, gc.Uppercase)
	applyBoolConfig(cmd, "lower", &genLower, gc.Lowercase)
	applyBoolConfig(cmd, "numbers", &genNumbers, gc.Numbers)
	applyBoolConfig(cmd, "symbols", &genSymbols, gc.Symbols)
	applyBoolConfig(cmd, "exclude-similar", &genExcludeSimilar, gc.ExcludeSimilar)
	applyBoolConfig(cmd, "exclude-ambiguous", &genExcludeAmbiguous, gc.ExcludeAmbiguous)

	cfg := model.Config{
		Length: genLength,
		Options: model.CharsetOptions{
			Uppercase:        genUpper,
			Lowercase:        genLower,
			Numbers:          genNumbers,
			Symbols:          genSymbols,
			ExcludeSimilar:   genExcludeSimilar,
			ExcludeAmbiguous: genExcludeAmbiguous,
		},
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	s, err := openSession(ctx, "tui")
	if err != nil {
		return err
	}
	defer s.close()

	cfg, err := resolveConfig(cmd, s.fileCfg)
	if err != nil {
		return err
	}

	ctrl := app.New(cfg, app.Deps{
		Generator:  generator.New(),
		History:    s.history,
		Theme:      s.theme,
		Clipboard:  app.SystemClipboard{},
		Logger:     s.log,
		ExportPath: s.exportPath(),
	})
	program := tea.NewProgram(tui.NewModel(ctrl), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print generated passwords",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	addGeneratorFlags(cmd)
	cmd.Flags().IntVar(&generateCount, "count", defaultCount, "number of passwords")
	cmd.Flags().BoolVar(&generateSave, "save", false, "save generated passwords to history")
	cmd.Flags().BoolVar(&generateCopy, "copy", false, "copy the last password to the clipboard")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	if generateCount <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	ctx := context.Background()
	s, err := openSession(ctx, "cli")
	if err != nil {
		return err
	}
	defer s.close()

	cfg, err := resolveConfig(cmd, s.fileCfg)
	if err != nil {
		return err
	}

	gen := generator.New()
	out := cmd.OutOrStdout()
	detailed := isTerminal(out)
	var last string
	for i := 0; i < generateCount; i++ {
		res, err := gen.Generate(cfg.Options, cfg.Length)
		if err != nil {
			if errors.Is(err, generator.ErrEmptyCharset) {
				return fmt.Errorf("no characters available: %w", err)
			}
			return fmt.Errorf("failed to generate password: %w", err)
		}
		if err := writeGenerated(out, res, detailed); err != nil {
			return err
		}
		if generateSave {
			if _, err := s.history.Save(ctx, res.Text); err != nil {
				return fmt.Errorf("failed to save password: %w", err)
			}
		}
		last = res.Text
	}

	if generateCopy {
		if err := (app.SystemClipboard{}).Write(last); err != nil {
			s.log.Warn().Err(err).Msg("failed to write clipboard")
			logErrf("failed to copy to clipboard: %v\n", err)
		} else {
			logErrln(app.NoticeCopied)
		}
	}
	return nil
}

func writeGenerated(w io.Writer, res model.GeneratedPassword, detailed bool) error {
	var err error
	if detailed {
		_, err = fmt.Fprintf(w, "%s  %s (%.1f bits)\n", res.Text, res.Strength, res.EntropyBits)
	} else {
		_, err = fmt.Fprintln(w, res.Text)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage saved passwords",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved passwords, most recent first",
		Args:  cobra.NoArgs,
		RunE:  runHistoryListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <index>",
		Short: "Delete the entry at index (0 is the most recent)",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryDeleteCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all saved passwords",
		Args:  cobra.NoArgs,
		RunE:  runHistoryClearCmd,
	})
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved passwords as CSV",
		Args:  cobra.NoArgs,
		RunE:  runHistoryExportCmd,
	}
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file, or - for stdout (default: password_history.csv)")
	cmd.AddCommand(exportCmd)
	return cmd
}

func runHistoryListCmd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(context.Background(), "cli")
	if err != nil {
		return err
	}
	defer s.close()

	entries := s.history.Entries()
	if len(entries) == 0 {
		logErrln("No saved passwords.")
		return nil
	}
	for _, line := range history.FormatTable(entries) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runHistoryDeleteCmd(_ *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}
	s, err := openSession(context.Background(), "cli")
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.history.DeleteAt(context.Background(), index); err != nil {
		if errors.Is(err, history.ErrIndexOutOfRange) {
			return fmt.Errorf("index %d out of range (history has %d entries)", index, s.history.Len())
		}
		return err
	}
	return nil
}

func runHistoryClearCmd(_ *cobra.Command, _ []string) error {
	s, err := openSession(context.Background(), "cli")
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.history.Clear(context.Background()); err != nil {
		return err
	}
	logErrln(app.NoticeCleared)
	return nil
}

func runHistoryExportCmd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(context.Background(), "cli")
	if err != nil {
		return err
	}
	defer s.close()

	if exportOut == "-" {
		payload, err := s.history.ExportCSV()
		if err != nil {
			return err
		}
		if _, err := io.WriteString(cmd.OutOrStdout(), payload); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	path := s.exportPath()
	if err := s.history.WriteExport(path); err != nil {
		return err
	}
	logErrf("History exported as CSV: %s\n", path)
	return nil
}

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the current theme",
		Args:  cobra.NoArgs,
		RunE:  runThemeCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE:  runThemeToggleCmd,
	})
	return cmd
}

func runThemeCmd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(context.Background(), "cli")
	if err != nil {
		return err
	}
	defer s.close()
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), s.theme.Current()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runThemeToggleCmd(cmd *cobra.Command, _ []string) error {
	s, err := openSession(context.Background(), "cli")
	if err != nil {
		return err
	}
	defer s.close()
	current, err := s.theme.Toggle(context.Background())
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), current); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# safemate configuration
# Uncomment a value to enable it. CLI flags override config values.

[generator]
# length = %d               # Password length (TUI slider range %d-%d)
# uppercase = true          # Include A-Z
# lowercase = true          # Include a-z
# numbers = true            # Include 0-9
# symbols = true            # Include %s
# exclude-similar = false   # Drop %s
# exclude-ambiguous = false # Drop %s

[export]
# path = %q # CSV export destination
`,
		app.DefaultLength,
		app.MinLength,
		app.MaxLength,
		generator.SymbolChars,
		generator.SimilarChars,
		generator.AmbiguousChars,
		history.DefaultExportName,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Length < 1 || cfg.Length > maxCLILength {
		return fmt.Errorf("--length must be between 1 and %d", maxCLILength)
	}
	if generator.BuildCharset(cfg.Options) == "" {
		return fmt.Errorf("at least one character type must remain enabled")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
