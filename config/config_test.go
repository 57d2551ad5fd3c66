package config

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/zucenko/mazechase/model"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Pacman", cfg.Title)
	assert.Equal(t, 32, cfg.CellSize)
	assert.Equal(t, 120, cfg.FPS)
	assert.Len(t, cfg.Maze, 31)
	assert.Equal(t, model.DefaultLegend, cfg.ModelLegend())

	maze, err := model.ParseMaze(cfg.Maze, cfg.ModelLegend())
	require.NoError(t, err)
	assert.Equal(t, 28, maze.Width)
	assert.Len(t, maze.Spawns, 4)
	require.NotNil(t, maze.PlayerSpawn)
	assert.Equal(t, model.Cell{Col: 1, Row: 1}, *maze.PlayerSpawn)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, p.Wall)
	assert.Len(t, p.Chasers, 4)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("fps: 30\nmaze:\n  - \"XXX\"\n  - \"X X\"\n  - \"XXX\"\n"))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, 32, cfg.CellSize, "unset keys keep the default")
	assert.Equal(t, []string{"XXX", "X X", "XXX"}, cfg.Maze)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero cell size", "cell_size: 0"},
		{"negative fps", "fps: -1"},
		{"long legend", "legend:\n  wall: \"XX\""},
		{"chaser rune is the wall rune", "legend:\n  chaser: \"X\""},
		{"player rune is the chaser rune", "legend:\n  player: \"G\""},
		{"bad color", "colors:\n  wall: \"blue\""},
		{"negative snapshot interval", "snapshot_every: -2"},
		{"not yaml", "fps: [1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ffb852")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0xb8, 0x52, 0xff}, c)

	c, err = ParseHex("ff000080")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x80, 0, 0, 0x80}, c, "alpha is premultiplied")

	_, err = ParseHex("#12345")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = ParseHex("#gggggg")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestReadMaze(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"crlf", "XXXXX\r\nXP  X\r\nXXXXX\r\n", []string{"XXXXX", "XP  X", "XXXXX"}},
		{"open row kept", "XX XX\n     \nXX XX\n", []string{"XX XX", "     ", "XX XX"}},
		{"hash walls", "#####\n#P G#\n#####\n", []string{"#####", "#P G#", "#####"}},
		{"trailing empty lines", "XXX\nX X\nXXX\n\n\r\n", []string{"XXX", "X X", "XXX"}},
		{"no final newline", "XXX\nX X", []string{"XXX", "X X"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ReadMaze(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}

	_, err := ReadMaze(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestReadMazeInteriorBlankLineIsRagged(t *testing.T) {
	rows, err := ReadMaze(strings.NewReader("XXXXX\n\nXP GX\nXXXXX\n"))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	_, err = model.ParseMaze(rows, model.DefaultLegend)
	assert.ErrorIs(t, err, model.ErrRaggedMaze)
}

func TestHashWalledMazeParses(t *testing.T) {
	cfg, err := Parse([]byte("legend:\n  wall: \"#\"\nmaze:\n  - \"#####\"\n  - \"#P G#\"\n  - \"#####\"\n"))
	require.NoError(t, err)
	maze, err := model.ParseMaze(cfg.Maze, cfg.ModelLegend())
	require.NoError(t, err)
	assert.Len(t, maze.Walls, 12)
	assert.Len(t, maze.Spawns, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadMaze(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromCommand(t *testing.T) {
	dir := t.TempDir()
	mazePath := filepath.Join(dir, "small.txt")
	require.NoError(t, os.WriteFile(mazePath, []byte("XXXXX\nXP GX\nXXXXX\n"), 0o644))

	var got *Options
	cmd := &cli.Command{
		Name:  "test",
		Flags: Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var err error
			got, err = FromCommand(cmd)
			return err
		},
	}
	err := cmd.Run(context.Background(), []string{"test", "--maze", mazePath, "--fps", "30", "--seed", "7", "--spectate", ":9000"})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 30, got.Config.FPS)
	assert.Equal(t, int64(7), got.Config.Seed)
	assert.Equal(t, 32, got.Config.CellSize)
	assert.Equal(t, []string{"XXXXX", "XP GX", "XXXXX"}, got.Config.Maze)
	assert.Equal(t, ":9000", got.Spectate)
	assert.Equal(t, "info", got.LogLevel)
	assert.Equal(t, "text", got.LogFormat)
}

func TestFromCommandValidatesOverrides(t *testing.T) {
	cmd := &cli.Command{
		Name:  "test",
		Flags: Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := FromCommand(cmd)
			return err
		},
	}
	err := cmd.Run(context.Background(), []string{"test", "--cell-size", "0"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
