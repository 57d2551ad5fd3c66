package server

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zucenko/mazechase/model"
)

type SpectatorState int32

const (
	SS_NEW SpectatorState = iota
	SS_WATCH
	SS_ERR
	SS_OVER
)

func (ss SpectatorState) Name() string {
	switch ss {
	case SS_NEW:
		return "NEW"
	case SS_WATCH:
		return "WATCH"
	case SS_ERR:
		return "ERR"
	case SS_OVER:
		return "OVER"
	default:
		return fmt.Sprintf("N/A(%d)", ss)
	}
}

// Spectator is one websocket watching the game. Only the hub loop sends on
// MessagesToSend and only the hub loop closes it.
type Spectator struct {
	Id    string
	State SpectatorState
	Conn  *websocket.Conn

	MessagesToSend chan model.Snapshot

	// leaving is set by the connection handler before it unregisters.
	leaving SpectatorState

	DebugOutMessages int
	DebugDropped     int
	DebugConnected   time.Time
}
