package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazechase/engine"
	"github.com/zucenko/mazechase/hud"
)

// errQuit ends ebiten.Run when the player asks to leave.
var errQuit = errors.New("quit")

type WindowState int

const (
	PLAYING WindowState = iota + 1
	CLEARED
	QUITTING
)

func (s WindowState) Name() string {
	switch s {
	case PLAYING:
		return "PLAYING"
	case CLEARED:
		return "CLEARED"
	case QUITTING:
		return "QUITTING"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Window hosts a game in an ebiten window. Ebiten owns buffer swap, frame
// pacing and clearing; update samples input, steps the game and draws the
// overlay.
type Window struct {
	State  WindowState
	Game   *engine.Game
	Canvas *Canvas

	label      *hud.Label
	labelImage *ebiten.Image
}

func NewWindow(game *engine.Game) (*Window, error) {
	label, err := hud.NewLabel(18, color.RGBA{255, 255, 255, 255})
	if err != nil {
		return nil, err
	}
	return &Window{
		State:  PLAYING,
		Game:   game,
		Canvas: NewCanvas(),
		label:  label,
	}, nil
}

func (w *Window) input() engine.Input {
	return engine.Input{
		Direction: engine.ResolveKeys(
			ebiten.IsKeyPressed(ebiten.KeyUp),
			ebiten.IsKeyPressed(ebiten.KeyLeft),
			ebiten.IsKeyPressed(ebiten.KeyDown),
			ebiten.IsKeyPressed(ebiten.KeyRight),
		),
		Quit: ebiten.IsKeyPressed(ebiten.KeyEscape),
	}
}

func (w *Window) update(screen *ebiten.Image) error {
	w.Game.HandleInput(w.input())
	if w.Game.Done() {
		w.State = QUITTING
		return errQuit
	}

	if ebiten.IsDrawingSkipped() {
		w.Canvas.screen = nil
	} else {
		w.Canvas.screen = screen
		if err := screen.Fill(color.Black); err != nil {
			log.Printf("%v", err)
		}
	}

	w.Game.Step(w.Canvas)
	if w.State == PLAYING && w.Game.World.PickupsLeft() == 0 {
		w.State = CLEARED
	}

	if w.Canvas.screen == nil {
		return nil
	}
	w.drawStatus(screen)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f %s", ebiten.CurrentTPS(), w.State.Name()), 8, 0)
	return nil
}

func (w *Window) drawStatus(screen *ebiten.Image) {
	img, redrawn := w.label.Render(w.Game.Status())
	if redrawn || w.labelImage == nil {
		labelImage, err := ebiten.NewImageFromImage(img, ebiten.FilterDefault)
		if err != nil {
			log.WithError(err).Warn("uploading status label")
			return
		}
		if w.labelImage != nil {
			w.labelImage.Dispose()
		}
		w.labelImage = labelImage
	}
	op := &ebiten.DrawImageOptions{}
	_, height := screen.Size()
	op.GeoM.Translate(8, float64(height-img.Bounds().Dy()-4))
	screen.DrawImage(w.labelImage, op)
}
