package main

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/campuswork/campuswork/internal/auth"
	"github.com/campuswork/campuswork/internal/catalog"
	"github.com/campuswork/campuswork/internal/config"
	"github.com/campuswork/campuswork/internal/domain/application"
	"github.com/campuswork/campuswork/internal/domain/lifecycle"
	"github.com/campuswork/campuswork/internal/domain/project"
	"github.com/campuswork/campuswork/internal/domain/student"
	"github.com/campuswork/campuswork/internal/mailbox"
	"github.com/campuswork/campuswork/internal/mcp"
	"github.com/campuswork/campuswork/internal/repository"
	"github.com/campuswork/campuswork/internal/sqlite"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	if logPath := os.Getenv("CAMPUSWORK_LOG_PATH"); logPath != "" {
		file, err := openLogFile(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = file
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	store := sqlite.NewProjectStore(db, catalog.DefaultProjects(), logger)
	projects := project.NewRegistry(store, logger)
	if err := projects.Load(context.Background()); err != nil {
		logger.Error("failed to load projects", "error", err)
		os.Exit(1)
	}
	apps := application.NewRegistry(catalog.SeedApplications())
	profile := student.NewRegistry(catalog.SeedProfile())
	inbox := mailbox.New()
	engine := lifecycle.NewEngine(projects, apps, inbox, lifecycle.LogSink{Logger: logger}, logger)

	handler := mcp.NewHandler(projects, apps, engine, inbox, profile)
	mcpServer := mcp.NewServer(mcp.Config{
		Handler:       handler,
		Resolver:      &roleKeyResolver{db: db},
		AuthEnabled:   cfg.Auth.Enabled,
		DefaultRole:   auth.Role(cfg.Auth.DefaultRole),
		TransportMode: cfg.Transport.Mode,
		Logger:        logger,
	})

	if cfg.Transport.Mode == "stdio" {
		runStdioMode(logger, mcpServer)
	} else {
		runHTTPMode(logger, mcpServer, cfg.Server.Host, cfg.Server.Port)
	}
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport", "auth", "disabled")

	transport := &sdkmcp.StdioTransport{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, transport); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, mcpServer *sdkmcp.Server, host string, port int) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := http.NewServeMux()
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/", mcpHandler)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func openLogFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// roleKeyResolver maps bearer keys to marketplace roles via the role_keys
// table. The key asserts a role; nothing further is verified.
type roleKeyResolver struct {
	db *sqlite.DB
}

func (r *roleKeyResolver) ResolveRole(ctx context.Context, token string) (auth.Role, error) {
	hash := hashToken(token)
	var role string
	err := r.db.QueryRowContext(ctx, `SELECT role FROM role_keys WHERE key_hash = ?`, hash).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.RoleNone, repository.ErrNotFound
	}
	if err != nil {
		return auth.RoleNone, fmt.Errorf("resolving role key: %w", err)
	}
	return auth.Role(role), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
