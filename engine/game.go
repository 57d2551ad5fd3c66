package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazechase/config"
	"github.com/zucenko/mazechase/effect"
	"github.com/zucenko/mazechase/entity"
	"github.com/zucenko/mazechase/hud"
	"github.com/zucenko/mazechase/model"
)

// Publisher receives world snapshots, typically a spectator hub.
type Publisher interface {
	Publish(s model.Snapshot)
}

type Settings struct {
	CellSize int
	FPS      int
	// SnapshotEvery publishes a snapshot every n frames; 0 never publishes.
	SnapshotEvery int
	Palette       Palette
	Rand          *rand.Rand
}

// Game is one running maze: the controller, the seeded world and the
// effects drawn over it.
type Game struct {
	Session    string
	Controller *Controller
	World      *World
	Effects    *effect.Set

	fps           int
	frame         uint64
	done          bool
	cleared       bool
	publisher     Publisher
	snapshotEvery int
	log           *log.Entry
}

func NewGame(maze *model.Maze, s Settings) (*Game, error) {
	rng := s.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	controller, err := NewController(maze, s.CellSize, rng)
	if err != nil {
		return nil, err
	}
	session := uuid.NewString()
	g := &Game{
		Session:       session,
		Controller:    controller,
		World:         controller.Seed(s.Palette),
		Effects:       effect.NewSet(),
		fps:           s.FPS,
		snapshotEvery: s.SnapshotEvery,
		log:           log.WithField("session", session),
	}
	g.log.WithFields(log.Fields{
		"cols":    maze.Width,
		"rows":    maze.Height,
		"chasers": len(g.World.Chasers),
		"pickups": g.World.PickupsTotal(),
	}).Info("game seeded")
	return g, nil
}

// FromConfig parses the configured maze and seeds a game from it. A zero
// seed picks one from the clock.
func FromConfig(cfg *config.Config) (*Game, error) {
	maze, err := model.ParseMaze(cfg.Maze, cfg.ModelLegend())
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	colors, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGame(maze, Settings{
		CellSize:      cfg.CellSize,
		FPS:           cfg.FPS,
		SnapshotEvery: cfg.SnapshotEvery,
		Palette: Palette{
			Wall:    colors.Wall,
			Player:  colors.Player,
			Pickup:  colors.Pickup,
			Chasers: colors.Chasers,
		},
		Rand: rand.New(rand.NewSource(seed)),
	})
}

// Attach sets the publisher snapshots go to.
func (g *Game) Attach(p Publisher) {
	g.publisher = p
}

// HandleInput applies one frame of sampled input. No held key keeps the
// player's current heading.
func (g *Game) HandleInput(in Input) {
	if in.Quit {
		g.done = true
		return
	}
	if in.Direction != model.None && g.World.Player != nil {
		g.World.Player.SetDirection(in.Direction)
	}
}

func (g *Game) Done() bool {
	return g.done
}

func (g *Game) Frame() uint64 {
	return g.frame
}

// Step runs one frame: every active entity updates then draws in insertion
// order, consumed pickups are compacted away and effects are drawn on top.
func (g *Game) Step(c entity.Canvas) {
	env := &entity.Env{
		Walls:   g.World.Walls,
		Pickups: g.World.Pickups,
		Width:   g.World.Width,
		Paths:   g.Controller,
	}
	for _, e := range g.World.Entities {
		if !e.Active {
			continue
		}
		e.Update(env)
		e.Draw(c)
	}

	for _, e := range g.World.Compact() {
		if e.Kind == entity.KindPickup {
			g.Effects.Pop(e.Position(), e.Size, e.Color)
		}
	}
	g.Effects.Update(g.frameSeconds())
	g.Effects.Draw(c)

	g.frame++
	if !g.cleared && g.World.PickupsTotal() > 0 && g.World.PickupsLeft() == 0 {
		g.cleared = true
		g.log.WithField("frame", g.frame).Info("maze cleared")
	}
	if g.publisher != nil && g.snapshotEvery > 0 && g.frame%uint64(g.snapshotEvery) == 0 {
		g.publisher.Publish(g.Snapshot())
	}
}

func (g *Game) frameSeconds() float32 {
	if g.fps <= 0 {
		return 0
	}
	return 1 / float32(g.fps)
}

// Snapshot copies the state spectators see.
func (g *Game) Snapshot() model.Snapshot {
	s := model.Snapshot{
		Session:      g.Session,
		Frame:        g.frame,
		PickupsLeft:  g.World.PickupsLeft(),
		PickupsTotal: g.World.PickupsTotal(),
	}
	if p := g.World.Player; p != nil {
		s.Player = g.actor(p)
	}
	s.Chasers = make([]model.Actor, 0, len(g.World.Chasers))
	for _, c := range g.World.Chasers {
		s.Chasers = append(s.Chasers, g.actor(c))
	}
	return s
}

func (g *Game) actor(e *entity.Entity) model.Actor {
	cell := model.ToGrid(e.Position(), g.Controller.CellSize)
	a := model.Actor{X: e.X, Y: e.Y, Col: cell.Col, Row: cell.Row}
	if e.Mover != nil {
		a.Direction = e.Mover.Current
	}
	return a
}

// Status is the one-line summary hosts print.
func (g *Game) Status() string {
	return hud.Status(g.World.PickupsLeft(), g.World.PickupsTotal())
}
