package config

import (
	"github.com/urfave/cli/v3"
)

const envPrefix = "MAZECHASE_"

// Options is everything a binary reads from its command line.
type Options struct {
	Config    *Config
	Spectate  string
	LogLevel  string
	LogFormat string
}

// Flags are shared by every binary. Each flag also reads MAZECHASE_<NAME>.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "YAML level document", Sources: cli.EnvVars(envPrefix + "CONFIG")},
		&cli.StringFlag{Name: "maze", Usage: "plain text maze file, replaces the document's grid", Sources: cli.EnvVars(envPrefix + "MAZE")},
		&cli.IntFlag{Name: "fps", Usage: "frame rate cap", Sources: cli.EnvVars(envPrefix + "FPS")},
		&cli.IntFlag{Name: "cell-size", Usage: "pixels per maze cell", Sources: cli.EnvVars(envPrefix + "CELL_SIZE")},
		&cli.Int64Flag{Name: "seed", Usage: "random seed for chaser destinations, 0 picks one", Sources: cli.EnvVars(envPrefix + "SEED")},
		&cli.StringFlag{Name: "spectate", Usage: "serve the spectator stream on this address", Sources: cli.EnvVars(envPrefix + "SPECTATE")},
		&cli.StringFlag{Name: "log-level", Value: "info", Usage: "logrus level", Sources: cli.EnvVars(envPrefix + "LOG_LEVEL")},
		&cli.StringFlag{Name: "log-format", Value: "text", Usage: "text or json", Sources: cli.EnvVars(envPrefix + "LOG_FORMAT")},
	}
}

// FromCommand loads the document named by --config and applies the flags
// that were set over it.
func FromCommand(cmd *cli.Command) (*Options, error) {
	cfg, err := Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if path := cmd.String("maze"); path != "" {
		rows, err := LoadMaze(path)
		if err != nil {
			return nil, err
		}
		cfg.Maze = rows
	}
	if cmd.IsSet("fps") {
		cfg.FPS = cmd.Int("fps")
	}
	if cmd.IsSet("cell-size") {
		cfg.CellSize = cmd.Int("cell-size")
	}
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.Int64("seed")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Options{
		Config:    cfg,
		Spectate:  cmd.String("spectate"),
		LogLevel:  cmd.String("log-level"),
		LogFormat: cmd.String("log-format"),
	}, nil
}
