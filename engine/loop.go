package engine

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Run drives g on h until the host asks to quit or ctx is done. Each frame
// steps the game, presents, waits for the frame deadline, applies input and
// clears the canvas.
func (g *Game) Run(ctx context.Context, h Host) error {
	g.log.Info("loop started")
	for !g.done {
		select {
		case <-ctx.Done():
			g.log.WithField("frame", g.frame).Info("loop cancelled")
			return ctx.Err()
		default:
		}
		g.Step(h)
		h.Present()
		h.Wait()
		g.HandleInput(h.Poll())
		h.Clear()
	}
	g.log.WithFields(log.Fields{"frame": g.frame}).Info("loop finished")
	return nil
}
