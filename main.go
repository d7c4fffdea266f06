package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/korvik/resfind-mcp/config"
	"github.com/korvik/resfind-mcp/ignore"
	"github.com/korvik/resfind-mcp/register"
	"github.com/korvik/resfind-mcp/resolve"
	"github.com/korvik/resfind-mcp/server"
	"github.com/korvik/resfind-mcp/tools"
	"github.com/korvik/resfind-mcp/track"
	"github.com/korvik/resfind-mcp/watcher"
)

// excludePatterns is a repeatable CLI flag for custom ignore patterns.
type excludePatterns []string

func (e *excludePatterns) String() string { return strings.Join(*e, ", ") }
func (e *excludePatterns) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "register" {
		register.Run(register.DeriveServerName(os.Args[0]), os.Args[2:])
		return
	}

	var rootDir string
	var ext string
	var configFile string
	var logLevel string
	var logFile string
	var excludes excludePatterns

	flag.StringVar(&rootDir, "root", "", "Project root directory (default: current working directory)")
	flag.StringVar(&ext, "ext", "", "Recognized resource extension (default: .res)")
	flag.StringVar(&configFile, "config", "", "Config file path (default: <root>/.resfind.yml)")
	flag.Var(&excludes, "exclude", "Extra ignore pattern (repeatable)")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug|info|warn|error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (default: resfind-mcp.log in the project root)")
	flag.Parse()

	flagRoot := rootDir
	if rootDir == "" {
		var err error
		rootDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
	}
	rootDir, _ = filepath.Abs(rootDir)

	if configFile == "" {
		configFile = filepath.Join(rootDir, config.DefaultFileName)
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over the config file.
	rootDir = applyConfigRoot(flagRoot, rootDir, cfg.Root)
	if ext != "" {
		cfg.Ext = ext
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	cfg.Excludes = append(cfg.Excludes, excludes...)
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(rootDir, "resfind-mcp.log")
	}

	// Logger writes to a file or stderr, never stdout: stdout carries the
	// MCP stdio transport.
	logger := setupLogger(cfg.LogLevel, cfg.LogFile)
	logger.Info("starting resfind-mcp", "root", rootDir, "ext", cfg.Ext)
	start := time.Now()

	rules := ignore.New(rootDir, cfg.Excludes)
	resolver := resolve.New(rootDir, resolve.Options{
		Ext:     cfg.Ext,
		Skipper: rules,
		Logger:  logger,
	})
	ledger := track.NewLedger()

	fileWatcher, err := watcher.New(rootDir, rules, logger)
	if err != nil {
		logger.Warn("failed to start file watcher, continuing without live invalidation", "error", err)
	} else {
		go fileWatcher.Run()
		go handleWatcherEvents(fileWatcher, rules, ledger, logger)
		defer fileWatcher.Close()
	}

	stopSweep := make(chan struct{})
	go runLedgerSweep(defaultSweepSeconds, ledger, logger, stopSweep)
	defer close(stopSweep)

	resolveHandler := &tools.ResolveHandler{Resolver: resolver, Ledger: ledger, Logger: logger}
	listHandler := &tools.ListHandler{Resolver: resolver, Logger: logger}
	changedHandler := &tools.ChangedHandler{Resolver: resolver, Ledger: ledger, Logger: logger}
	statusHandler := &tools.StatusHandler{Resolver: resolver, Ledger: ledger, StartTime: start, Logger: logger}

	mcpServer := server.Setup(resolveHandler, listHandler, changedHandler, statusHandler)

	logger.Info("MCP server starting on stdio")
	if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

// applyConfigRoot re-roots the server on the config file's root setting.
// The -root flag wins when given; an unset or unresolvable config root
// keeps the current directory.
func applyConfigRoot(flagRoot, current, cfgRoot string) string {
	if flagRoot != "" || cfgRoot == "" {
		return current
	}
	abs, err := filepath.Abs(cfgRoot)
	if err != nil {
		return current
	}
	return abs
}

// handleWatcherEvents turns coalesced filesystem events into ledger
// invalidations, and reloads ignore rules when an ignore file changes.
func handleWatcherEvents(w *watcher.Watcher, rules *ignore.Rules, ledger *track.Ledger, logger *slog.Logger) {
	for batch := range w.Events() {
		for _, ev := range batch {
			name := filepath.Base(ev.Path)
			if name == ".gitignore" || name == ".resignore" {
				rules.Reload()
				logger.Info("reloaded ignore rules", "trigger", name)
				continue
			}
			switch ev.Op {
			case watcher.OpRemove, watcher.OpRename:
				ledger.Invalidate(ev.Path)
				logger.Debug("resource removed", "path", ev.Path)
			case watcher.OpWrite, watcher.OpCreate:
				ledger.Invalidate(ev.Path)
				logger.Debug("resource modified", "path", ev.Path)
			}
		}
	}
}

// setupLogger creates an slog.Logger writing to a file or stderr.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	writer := os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
		} else {
			writer = f
		}
	}

	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel}))
}
