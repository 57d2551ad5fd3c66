// Package config loads the level and tuning document.
//
// The default document is embedded at build time. A YAML file can replace it
// and a plain text maze file can replace just the grid.
package config

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zucenko/mazechase/model"
)

var ErrInvalidConfig = errors.New("invalid configuration")

//go:embed default.yaml
var defaultDocument []byte

type Config struct {
	Title         string   `yaml:"title"`
	CellSize      int      `yaml:"cell_size"`
	FPS           int      `yaml:"fps"`
	Seed          int64    `yaml:"seed"`
	SnapshotEvery int      `yaml:"snapshot_every"`
	Legend        Legend   `yaml:"legend"`
	Colors        Colors   `yaml:"colors"`
	Maze          []string `yaml:"maze"`
}

type Legend struct {
	Wall   string `yaml:"wall"`
	Chaser string `yaml:"chaser"`
	Player string `yaml:"player"`
}

// Colors are "#rrggbb" or "#rrggbbaa" strings.
type Colors struct {
	Wall    string   `yaml:"wall"`
	Player  string   `yaml:"player"`
	Pickup  string   `yaml:"pickup"`
	Chasers []string `yaml:"chasers"`
}

// Default returns the embedded document.
func Default() (*Config, error) {
	return Parse(defaultDocument)
}

// Load reads a YAML document from path; an empty path yields the default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a document over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultDocument, cfg); err != nil {
		return nil, fmt.Errorf("embedded config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size %d must be positive", ErrInvalidConfig, c.CellSize)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalidConfig, c.FPS)
	}
	if c.SnapshotEvery < 0 {
		return fmt.Errorf("%w: snapshot_every %d is negative", ErrInvalidConfig, c.SnapshotEvery)
	}
	for name, s := range map[string]string{"wall": c.Legend.Wall, "chaser": c.Legend.Chaser, "player": c.Legend.Player} {
		if len([]rune(s)) != 1 {
			return fmt.Errorf("%w: legend %s %q must be a single character", ErrInvalidConfig, name, s)
		}
	}
	if c.Legend.Wall == c.Legend.Chaser || c.Legend.Wall == c.Legend.Player || c.Legend.Chaser == c.Legend.Player {
		return fmt.Errorf("%w: legend runes %q %q %q must differ", ErrInvalidConfig, c.Legend.Wall, c.Legend.Chaser, c.Legend.Player)
	}
	if len(c.Maze) == 0 {
		return fmt.Errorf("%w: maze is empty", ErrInvalidConfig)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

func (c *Config) ModelLegend() model.Legend {
	return model.Legend{
		Wall:        []rune(c.Legend.Wall)[0],
		ChaserSpawn: []rune(c.Legend.Chaser)[0],
		PlayerSpawn: []rune(c.Legend.Player)[0],
	}
}

// ParsedColors is Colors after hex decoding.
type ParsedColors struct {
	Wall, Player, Pickup color.RGBA
	Chasers              []color.RGBA
}

func (c *Config) Palette() (ParsedColors, error) {
	var p ParsedColors
	var err error
	if p.Wall, err = ParseHex(c.Colors.Wall); err != nil {
		return p, err
	}
	if p.Player, err = ParseHex(c.Colors.Player); err != nil {
		return p, err
	}
	if p.Pickup, err = ParseHex(c.Colors.Pickup); err != nil {
		return p, err
	}
	for _, s := range c.Colors.Chasers {
		clr, err := ParseHex(s)
		if err != nil {
			return p, err
		}
		p.Chasers = append(p.Chasers, clr)
	}
	return p, nil
}

// ParseHex decodes "#rrggbb" or "#rrggbbaa" into a premultiplied color.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidConfig, s)
	}
	r, g, b, a := uint32(u>>24), uint32(u>>16&0xff), uint32(u>>8&0xff), uint32(u&0xff)
	return color.RGBA{
		R: uint8(r * a / 0xff),
		G: uint8(g * a / 0xff),
		B: uint8(b * a / 0xff),
		A: uint8(a),
	}, nil
}

// LoadMaze reads a plain text maze file, one row per line.
func LoadMaze(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze %s: %w", path, err)
	}
	defer file.Close()
	return ReadMaze(file)
}

// ReadMaze reads maze rows until EOF. Every line is a row, including lines of
// spaces; only trailing carriage returns and empty lines at the end of the
// file are dropped.
func ReadMaze(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	rows := make([]string, 0)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: maze file has no rows", ErrInvalidConfig)
	}
	return rows, nil
}
