package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/zucenko/mazechase/config"
	"github.com/zucenko/mazechase/engine"
	"github.com/zucenko/mazechase/logger"
	"github.com/zucenko/mazechase/server"
	"github.com/zucenko/mazechase/term"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("loading .env: %v", err)
	}
	flags := append(config.Flags(), &cli.StringFlag{
		Name:    "log-file",
		Value:   "mazechase.log",
		Usage:   "where logs go while the terminal is in use",
		Sources: cli.EnvVars("MAZECHASE_LOG_FILE"),
	})
	cmd := &cli.Command{
		Name:   "mazechase-terminal",
		Usage:  "play the maze in a terminal",
		Flags:  flags,
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logFile, err := os.OpenFile(cmd.String("log-file"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger.Setup(cmd.String("log-level"), cmd.String("log-format"), logFile)

	opts, err := config.FromCommand(cmd)
	if err != nil {
		return err
	}
	game, err := engine.FromConfig(opts.Config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Spectate != "" {
		hub := server.NewHub()
		game.Attach(hub)
		go hub.Loop(ctx)
		go func() {
			if err := http.ListenAndServe(opts.Spectate, hub.Routes()); err != nil {
				log.WithError(err).Error("spectator hub stopped")
			}
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	host := term.New(screen, opts.Config.CellSize, opts.Config.FPS)
	defer host.Close()

	err = game.Run(ctx, &statusHost{Host: host, game: game})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// statusHost refreshes the status line before each frame is shown.
type statusHost struct {
	*term.Host
	game *engine.Game
}

func (h *statusHost) Present() {
	h.SetStatus(h.game.Status())
	h.Host.Present()
}
