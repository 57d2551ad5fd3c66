package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/hajimehoshi/ebiten"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/zucenko/mazechase/config"
	"github.com/zucenko/mazechase/engine"
	"github.com/zucenko/mazechase/logger"
	"github.com/zucenko/mazechase/server"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("loading .env: %v", err)
	}
	cmd := &cli.Command{
		Name:   "mazechase",
		Usage:  "play the maze in a window",
		Flags:  config.Flags(),
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger.Setup(cmd.String("log-level"), cmd.String("log-format"), os.Stderr)
	opts, err := config.FromCommand(cmd)
	if err != nil {
		return err
	}
	game, err := engine.FromConfig(opts.Config)
	if err != nil {
		return err
	}

	if opts.Spectate != "" {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		hub := server.NewHub()
		game.Attach(hub)
		go hub.Loop(ctx)
		go func() {
			log.WithField("addr", opts.Spectate).Info("serving spectators")
			if err := http.ListenAndServe(opts.Spectate, hub.Routes()); err != nil {
				log.WithError(err).Error("spectator hub stopped")
			}
		}()
	}

	window, err := NewWindow(game)
	if err != nil {
		return err
	}
	ebiten.SetMaxTPS(opts.Config.FPS)
	err = ebiten.Run(window.update, game.World.Width, game.World.Height, 1, opts.Config.Title)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
