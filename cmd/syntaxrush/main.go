// Package main provides the CLI entrypoint for syntaxrush.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/CHARAN123567888880/SyntaxRush/internal/boardui"
	"github.com/CHARAN123567888880/SyntaxRush/internal/catalog"
	"github.com/CHARAN123567888880/SyntaxRush/internal/config"
	"github.com/CHARAN123567888880/SyntaxRush/internal/driver"
	"github.com/CHARAN123567888880/SyntaxRush/internal/generator"
	"github.com/CHARAN123567888880/SyntaxRush/internal/history"
	"github.com/CHARAN123567888880/SyntaxRush/internal/leaderboard"
	"github.com/CHARAN123567888880/SyntaxRush/internal/metrics"
	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
	"github.com/CHARAN123567888880/SyntaxRush/internal/server"
	"github.com/CHARAN123567888880/SyntaxRush/internal/snippetfile"
	"github.com/CHARAN123567888880/SyntaxRush/internal/store"
	"github.com/CHARAN123567888880/SyntaxRush/internal/tui"
)

const (
	defaultUsername    = "guest"
	defaultLang        = "javascript"
	defaultDifficulty  = "easy"
	defaultGoalMinutes = 30.0
	defaultServerAddr  = ":5000"
	defaultKeyWindow   = 20
)

var (
	playUsername    string
	playLang        string
	playDifficulty  string
	playGoalMinutes float64
	playFile        string
	playGenerate    bool

	boardLang string

	statsLang      string
	statsKeyWindow int

	serveAddr     string
	serveMongoURI string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "syntaxrush",
		Short:         "Terminal typing practice for code snippets",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playUsername, "username", defaultUsername, "name recorded on the leaderboard")
	rootCmd.Flags().StringVar(&playLang, "lang", defaultLang, "snippet language (javascript, python, java, cpp)")
	rootCmd.Flags().StringVar(&playDifficulty, "difficulty", defaultDifficulty, "generated snippet difficulty (easy, medium, hard)")
	rootCmd.Flags().Float64Var(&playGoalMinutes, "goal-minutes", defaultGoalMinutes, "daily practice goal in minutes")
	rootCmd.Flags().StringVar(&playFile, "file", "", "practice an uploaded snippet file (.js, .py, .java, .cpp)")
	rootCmd.Flags().BoolVar(&playGenerate, "generate", false, "practice a generated snippet instead of a catalog one")

	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "username", &playUsername, fileCfg.Play.Username)
	applyStringConfig(cmd, "lang", &playLang, fileCfg.Play.Lang)
	applyStringConfig(cmd, "difficulty", &playDifficulty, fileCfg.Play.Difficulty)
	applyFloatConfig(cmd, "goal-minutes", &playGoalMinutes, fileCfg.Play.GoalMinutes)

	if playGoalMinutes <= 0 {
		return fmt.Errorf("--goal-minutes must be > 0")
	}

	cat := catalog.New()
	lang, ok := catalog.ParseLanguage(playLang)
	if !ok {
		return unknownLanguageError(cat, playLang)
	}
	difficulty := model.Difficulty(playDifficulty)
	switch difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		return fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", playDifficulty)
	}

	cfg := model.PlayConfig{
		Username:    playUsername,
		Language:    lang,
		Difficulty:  difficulty,
		GoalMinutes: playGoalMinutes,
	}

	st := openStoreOrDegrade()
	var kv leaderboard.KV = leaderboard.NewMemory()
	var recorder driver.Recorder
	if st != nil {
		defer closeStore(st)
		kv = st
		recorder = st
	}
	board := leaderboard.NewStore(kv)

	presenter := metrics.NewPresenter(cfg.GoalMinutes)
	drv := driver.New(cat, presenter)

	switch {
	case playFile != "":
		snippet, err := snippetfile.Load(playFile)
		if err != nil {
			return err
		}
		drv.StartSnippet(snippet.Language, snippet)
	case playGenerate:
		snippet := generator.New().Generate(cat, lang, difficulty)
		drv.StartSnippet(lang, snippet)
	default:
		if _, err := drv.Start(lang); err != nil {
			return unknownLanguageError(cat, playLang)
		}
	}

	program := tea.NewProgram(tui.NewModel(cfg, drv, board, recorder), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show per-language top scores",
		Args:  cobra.NoArgs,
		RunE:  runLeaderboardCmd,
	}
	cmd.Flags().StringVar(&boardLang, "lang", "", "language shown first")
	return cmd
}

func runLeaderboardCmd(_ *cobra.Command, _ []string) error {
	st := openStoreOrDegrade()
	var kv leaderboard.KV = leaderboard.NewMemory()
	if st != nil {
		defer closeStore(st)
		kv = st
	}
	board := leaderboard.NewStore(kv)

	languages := board.Languages()
	if len(languages) == 0 {
		languages = catalog.New().Languages()
	}
	start, _ := catalog.ParseLanguage(boardLang)

	program := tea.NewProgram(boardui.NewModel(board, languages, start), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run leaderboard TUI: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show practice history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsLang, "lang", "", "language filter")
	cmd.Flags().IntVar(&statsKeyWindow, "key-window", defaultKeyWindow, "number of recent sessions for per-key stats")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var lang model.Language
	if statsLang != "" {
		parsed, ok := catalog.ParseLanguage(statsLang)
		if !ok {
			return unknownLanguageError(catalog.New(), statsLang)
		}
		lang = parsed
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	report, err := history.BuildReport(context.Background(), st, lang, statsKeyWindow)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	return history.RenderReport(cmd.OutOrStdout(), report, terminalWidth())
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the registration/snippet backend API",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :5000 or $PORT)")
	cmd.Flags().StringVar(&serveMongoURI, "mongo-uri", "", "MongoDB connection string (default $MONGO_URI)")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		logErrln("No .env file found, using system env")
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "addr", &serveAddr, fileCfg.Server.Addr)
	applyStringConfig(cmd, "mongo-uri", &serveMongoURI, fileCfg.Server.MongoURI)

	addr := serveAddr
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = defaultServerAddr
		}
	}
	mongoURI := serveMongoURI
	if mongoURI == "" {
		mongoURI = os.Getenv("MONGO_URI")
	}
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017/typing-practice"
	}

	users, err := server.ConnectMongo(mongoURI)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer func() {
		if cerr := users.Close(context.Background()); cerr != nil {
			logErrf("failed to disconnect MongoDB: %v\n", cerr)
		}
	}()

	logErrf("Server is running on %s\n", addr)
	srv := server.New(users, catalog.New())
	if err := srv.Router().Run(addr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
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

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List supported snippet languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	for _, lang := range catalog.New().Languages() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// openStoreOrDegrade opens the SQLite store, degrading to nil (memory
// leaderboard, no history) when the database is unavailable.
func openStoreOrDegrade() *store.Store {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db, continuing without persistence: %v\n", err)
		return nil
	}
	return st
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func unknownLanguageError(cat *catalog.Catalog, name string) error {
	langs := make([]string, 0, 4)
	for _, lang := range cat.Languages() {
		langs = append(langs, string(lang))
	}
	return fmt.Errorf("unknown language %q (available: %s)", name, strings.Join(langs, ", "))
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# syntaxrush configuration
# Uncomment a value to enable it. CLI flags override config values.

[play]
# username = %q        # Name recorded on the leaderboard
# lang = %q       # Snippet language (javascript, python, java, cpp)
# difficulty = %q        # Generated snippet difficulty (easy, medium, hard)
# goal-minutes = %.0f         # Daily practice goal in minutes

[server]
# addr = ":5000"            # Backend API listen address
# mongo-uri = "mongodb://localhost:27017/typing-practice"
`,
		defaultUsername,
		defaultLang,
		defaultDifficulty,
		defaultGoalMinutes,
	)
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
