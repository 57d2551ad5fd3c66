// Package server streams game snapshots to websocket spectators.
package server

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazechase/model"
)

const (
	URI_WATCH  = "/watch"
	URI_STATUS = "/status"
)

// Hub fans snapshots out to spectators. Spectators is owned by Loop; other
// goroutines talk to it through the channels.
type Hub struct {
	Spectators []*Spectator
	Register   chan *Spectator
	Unregister chan *Spectator
	Snapshots  chan model.Snapshot
	Upgrader   *websocket.Upgrader

	mu        sync.RWMutex
	latest    model.Snapshot
	hasLatest bool

	watching int32
	done     chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		Spectators: make([]*Spectator, 0),
		Register:   make(chan *Spectator),
		Unregister: make(chan *Spectator),
		Snapshots:  make(chan model.Snapshot, 16),
		Upgrader:   &websocket.Upgrader{},
		done:       make(chan struct{}),
	}
}

// Publish hands a snapshot to the hub without blocking the game loop. When
// the hub is behind the snapshot is dropped; the next one supersedes it.
func (h *Hub) Publish(s model.Snapshot) {
	h.mu.Lock()
	h.latest = s
	h.hasLatest = true
	h.mu.Unlock()

	select {
	case h.Snapshots <- s:
	default:
		log.WithField("frame", s.Frame).Warn("Hub.Publish snapshots FULL, dropping")
	}
}

// Latest is the last published snapshot.
func (h *Hub) Latest() (model.Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.hasLatest
}

// Watching is the number of registered spectators.
func (h *Hub) Watching() int {
	return int(atomic.LoadInt32(&h.watching))
}

// Loop serves registrations and fans out snapshots until ctx is done, then
// disconnects every spectator.
func (h *Hub) Loop(ctx context.Context) {
	log.Info("Hub.Loop starting")
	defer close(h.done)
	for {
		select {
		case sp := <-h.Register:
			sp.State = SS_WATCH
			h.Spectators = append(h.Spectators, sp)
			atomic.StoreInt32(&h.watching, int32(len(h.Spectators)))
			if latest, ok := h.Latest(); ok {
				sp.MessagesToSend <- latest
			}
			log.WithFields(log.Fields{"spectator": sp.Id, "watching": len(h.Spectators)}).Info("Hub.Loop registered")
		case sp := <-h.Unregister:
			h.remove(sp, sp.leaving)
		case s := <-h.Snapshots:
			for _, sp := range h.Spectators {
				select {
				case sp.MessagesToSend <- s:
				default:
					sp.DebugDropped++
					log.WithFields(log.Fields{"spectator": sp.Id, "frame": s.Frame}).Warn("Hub.Loop spectator behind, dropping")
				}
			}
		case <-ctx.Done():
			for len(h.Spectators) > 0 {
				sp := h.Spectators[0]
				h.remove(sp, SS_OVER)
				sp.Conn.Close()
			}
			log.Info("Hub.Loop ended")
			return
		}
	}
}

func (h *Hub) remove(sp *Spectator, state SpectatorState) {
	for i, other := range h.Spectators {
		if other != sp {
			continue
		}
		sp.State = state
		close(sp.MessagesToSend)
		h.Spectators = append(h.Spectators[:i], h.Spectators[i+1:]...)
		atomic.StoreInt32(&h.watching, int32(len(h.Spectators)))
		log.WithFields(log.Fields{"spectator": sp.Id, "state": state.Name()}).Info("Hub.Loop unregistered")
		return
	}
}

func (h *Hub) unregister(sp *Spectator) {
	select {
	case h.Unregister <- sp:
	case <-h.done:
	}
}

// Routes returns the router serving the watch and status endpoints.
func (h *Hub) Routes() *way.Router {
	router := way.NewRouter()
	router.HandleFunc("GET", URI_WATCH, h.HandleWatch())
	router.HandleFunc("GET", URI_STATUS, h.HandleStatus())
	return router
}

// HandleWatch upgrades the request and streams gob encoded snapshots until
// the spectator disconnects or the hub stops.
func (h *Hub) HandleWatch() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		con, err := h.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("HandleWatch websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		sp := &Spectator{
			Id:             uuid.NewString(),
			State:          SS_NEW,
			Conn:           con,
			MessagesToSend: make(chan model.Snapshot, 10),
			DebugConnected: time.Now(),
		}
		select {
		case h.Register <- sp:
		case <-h.done:
			return
		case <-time.After(timeout):
			log.Warn("HandleWatch Register TIMEOUTED")
			return
		}

		go h.loopChannelWrite(sp)
		sp.leaving = departure(h.loopChannelRead(sp))
		h.unregister(sp)
	}
}

// loopChannelRead only waits for the spectator to go away; spectators never
// send anything the game acts on.
func (h *Hub) loopChannelRead(sp *Spectator) error {
	for {
		if _, _, err := sp.Conn.NextReader(); err != nil {
			log.WithField("spectator", sp.Id).Debugf("loopChannelRead ended: %v", err)
			return err
		}
	}
}

// departure is SS_OVER for a spectator that said goodbye with a close frame
// and SS_ERR for anything else, a failed write included.
func departure(err error) SpectatorState {
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return SS_OVER
	}
	return SS_ERR
}

// loopChannelWrite consumes until the hub closes MessagesToSend. A failed
// write closes the connection, which ends the read loop.
func (h *Hub) loopChannelWrite(sp *Spectator) {
	failed := false
	for mes := range sp.MessagesToSend {
		if failed {
			continue
		}
		if err := writeSnapshot(sp.Conn, mes); err != nil {
			log.WithField("spectator", sp.Id).Warnf("loopChannelWrite cant write %v", err)
			failed = true
			sp.Conn.Close()
			continue
		}
		sp.DebugOutMessages++
	}
}

func writeSnapshot(con *websocket.Conn, s model.Snapshot) error {
	w, err := con.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(s); err != nil {
		return err
	}
	return w.Close()
}

// HandleStatus returns the latest snapshot as JSON, or 204 before the first.
func (h *Hub) HandleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest, ok := h.Latest()
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(struct {
			model.Snapshot
			Watching int
		}{latest, h.Watching()}); err != nil {
			log.Warnf("HandleStatus encode err %v", err)
		}
	}
}
