package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ctchen222/minimax-tic-tac-toe/internal/api/controller"
	"ctchen222/minimax-tic-tac-toe/internal/api/service"
	"ctchen222/minimax-tic-tac-toe/internal/bot"
	"ctchen222/minimax-tic-tac-toe/internal/config"
	"ctchen222/minimax-tic-tac-toe/internal/console"
	"ctchen222/minimax-tic-tac-toe/internal/game"
	"ctchen222/minimax-tic-tac-toe/internal/logger"
	"ctchen222/minimax-tic-tac-toe/internal/match"
	"ctchen222/minimax-tic-tac-toe/internal/player"
	"ctchen222/minimax-tic-tac-toe/internal/room"
	"ctchen222/minimax-tic-tac-toe/internal/server"
	"ctchen222/minimax-tic-tac-toe/internal/telemetry"

	"github.com/gin-gonic/gin"
)

const usage = `usage: tictactoe [-config path] [-mode computer|human] [play|serve]`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// After the first signal, a second one falls back to the default and kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, console.ErrInputClosed) || errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("tictactoe", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	mode := flags.String("mode", "", "computer or human; overrides the config")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *mode != "" {
		cfg.Mode = *mode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	engine, err := bot.NewEngine()
	if err != nil {
		return err
	}

	command := "play"
	if flags.NArg() > 0 {
		command = flags.Arg(0)
	}
	switch command {
	case "play":
		return play(ctx, cfg, engine, stdin, stdout)
	case "serve":
		return serve(ctx, cfg, engine)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func play(ctx context.Context, cfg *config.Config, engine *bot.Engine, stdin io.Reader, stdout io.Writer) error {
	input := console.NewInput(stdin)

	var playerO player.Player = bot.NewBotPlayer(engine)
	if cfg.Mode == config.ModeHuman {
		playerO = console.NewHuman(game.PlayerO, input, stdout)
	}
	playerX := console.NewHuman(game.PlayerX, input, stdout)

	renderer := console.NewRenderer(stdout, !cfg.NoColor)
	table, err := room.NewRoom(playerX, playerO, renderer)
	if err != nil {
		return err
	}
	m, err := match.NewMatch(table, renderer, match.WithWinsNeeded(cfg.Match.WinsNeeded))
	if err != nil {
		return err
	}

	_, _, err = m.Run(ctx)
	return err
}

func serve(ctx context.Context, cfg *config.Config, engine *bot.Engine) error {
	gin.SetMode(gin.ReleaseMode)
	analysisController := controller.NewAnalysisController(service.NewAnalysisService(engine))
	srv := server.NewServer(analysisController)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server started", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server exiting")
	return nil
}
