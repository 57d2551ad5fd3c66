package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/zucenko/mazechase/logger"
	"github.com/zucenko/mazechase/model"
	"github.com/zucenko/mazechase/server"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("loading .env: %v", err)
	}
	cmd := &cli.Command{
		Name:  "mazechase-spectate",
		Usage: "watch a running maze and log what happens",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: "localhost:8080", Usage: "hub host:port", Sources: cli.EnvVars("MAZECHASE_SPECTATE")},
			&cli.StringFlag{Name: "log-level", Value: "info", Sources: cli.EnvVars("MAZECHASE_LOG_LEVEL")},
			&cli.StringFlag{Name: "log-format", Value: "text", Sources: cli.EnvVars("MAZECHASE_LOG_FORMAT")},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger.Setup(cmd.String("log-level"), cmd.String("log-format"), os.Stderr)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := server.Watch(ctx, server.WatchURL(cmd.String("addr")), func(s model.Snapshot) {
		log.WithFields(log.Fields{
			"session":  s.Session,
			"frame":    s.Frame,
			"player":   model.Cell{Col: s.Player.Col, Row: s.Player.Row},
			"heading":  s.Player.Direction.Name(),
			"chasers":  len(s.Chasers),
			"pickups":  s.PickupsLeft,
			"of_total": s.PickupsTotal,
		}).Info("snapshot")
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
