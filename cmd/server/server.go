package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/zucenko/mazechase/config"
	"github.com/zucenko/mazechase/engine"
	"github.com/zucenko/mazechase/logger"
	"github.com/zucenko/mazechase/server"
)

// Server runs a headless game with roaming chasers and streams it to
// spectators.
type Server struct {
	router *way.Router
	Hub    *server.Hub
	Game   *engine.Game
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("loading .env: %v", err)
	}
	cmd := &cli.Command{
		Name:   "mazechase-server",
		Usage:  "run a headless maze and serve it to spectators",
		Flags:  config.Flags(),
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalln(err)
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

	s := Server{Hub: server.NewHub(), Game: game}
	game.Attach(s.Hub)
	s.routes()

	addr := opts.Spectate
	if addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
			log.Printf("Defaulting to port %s", port)
		}
		addr = ":" + port
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go s.Hub.Loop(ctx)
	go func() {
		if err := game.Run(ctx, engine.NewHeadlessHost(opts.Config.FPS)); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("game loop failed")
		}
	}()

	httpServer := &http.Server{Addr: addr, Handler: s.router}
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	log.WithFields(log.Fields{"addr": addr, "session": game.Session}).Info("serving spectators")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
