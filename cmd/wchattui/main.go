package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/matheus3301/wchat/internal/client"
	"github.com/matheus3301/wchat/internal/config"
	"github.com/matheus3301/wchat/internal/logging"
	"github.com/matheus3301/wchat/internal/profile"
	"github.com/matheus3301/wchat/internal/tui"
)

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	accountFlag := flag.String("account", "", "account name within the profile")
	flag.Parse()

	_ = godotenv.Load()

	profileName := profile.Resolve(*profileFlag)
	account := profile.ResolveAccount(*accountFlag)
	for _, name := range []string{profileName, account} {
		if err := profile.ValidateName(name); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Resolve(profile.ConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := profile.EnsureDir(profileName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(profile.TUILogPath(profileName), profileName, logging.Options{Level: cfg.LogLevel, FileOnly: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	marker := client.NewMarkerFile(profile.AccountPath(profileName, account))
	c, err := client.Dial(profile.SocketPath(profileName), marker, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to daemon: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	// Probe daemon health; auto-start if needed.
	if !probeDaemon(c) {
		fmt.Fprintf(os.Stderr, "daemon not running for profile %q, starting...\n", profileName)
		if err := startDaemon(profileName); err != nil {
			fmt.Fprintf(os.Stderr, "failed to start daemon: %v\n", err)
			os.Exit(1)
		}
		if !waitForDaemon(c, 10*time.Second) {
			fmt.Fprintf(os.Stderr, "daemon did not become ready, see %s\n", profile.LogPath(profileName))
			os.Exit(1)
		}
	}

	logger.Info("tui starting", zap.String("account", account))
	app := tui.NewApp(c, tui.Options{
		Profile:  profileName,
		Account:  account,
		Settings: cfg,
		Logger:   logger,
	})
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	app.Stop()
}

func probeDaemon(c *client.Client) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.Probe(ctx) == nil
}

func startDaemon(profileName string) error {
	executable, err := os.Executable()
	if err != nil {
		return err
	}
	wchatd := filepath.Join(filepath.Dir(executable), "wchatd")

	if _, err := os.Stat(wchatd); err != nil {
		wchatd = "wchatd"
	}

	// The daemon's stderr is left detached: it would draw over the TUI.
	// Startup failures land in its log file.
	cmd := exec.Command(wchatd, "--profile", profileName)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// waitForDaemon polls the daemon with a real gRPC health check (not just socket connect).
func waitForDaemon(c *client.Client, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if probeDaemon(c) {
			return true
		}
		time.Sleep(300 * time.Millisecond)
	}
	return false
}
