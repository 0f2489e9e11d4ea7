package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/PortalQuest_Go/internal/config"
	"github.com/osse101/PortalQuest_Go/internal/logger"
)

// SetupLogger installs the process logger. With LOG_DIR set it also writes a
// timestamped session file there, pruning all but the most recent few.
// The returned file is nil without LOG_DIR; otherwise the caller closes it.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, cfg.IsDevelopment())

	var out io.Writer = os.Stdout
	var logFile *os.File
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf(ErrMsgCreateLogDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileKeep)

		name := filepath.Join(cfg.LogDir, LogFilePrefix+time.Now().Format(LogFileStamp)+LogFileSuffix)
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, FilePermission)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	logger.InitWithWriter(logCfg, out)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel().String(), "file", logFile != nil)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigLoaded,
		"port", cfg.Port,
		"storage", cfg.StorageDriver,
		"cooldowns", cfg.CooldownBackend,
		"oracle", cfg.OracleEnabled())

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that keep-1 remain before a new one is opened
func cleanupLogs(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), LogFilePrefix) && strings.HasSuffix(entry.Name(), LogFileSuffix) {
			names = append(names, entry.Name())
		}
	}
	// Timestamps sort lexically
	sort.Strings(names)

	for len(names) > keep-1 && len(names) > 0 {
		if err := os.Remove(filepath.Join(dir, names[0])); err != nil {
			slog.Warn(LogMsgLogCleanupFailed, "file", names[0], "error", err)
		}
		names = names[1:]
	}
}
