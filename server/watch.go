package server

import (
	"context"
	"encoding/gob"
	"fmt"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazechase/model"
)

// WatchURL builds the websocket address of a hub served at addr (host:port).
func WatchURL(addr string) string {
	u := url.URL{Scheme: "ws", Host: addr, Path: URI_WATCH}
	return u.String()
}

// Watch dials a hub and calls onSnapshot for every snapshot received until
// ctx is done or the connection drops.
func Watch(ctx context.Context, wsURL string, onSnapshot func(model.Snapshot)) error {
	con, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", wsURL, err)
	}
	defer con.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			bye := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			if err := con.WriteControl(websocket.CloseMessage, bye, time.Now().Add(time.Second)); err != nil {
				log.WithError(err).Debug("Watch close frame")
			}
			con.Close()
		case <-stop:
		}
	}()

	log.WithField("url", wsURL).Info("Watch connected")
	for {
		messageType, r, err := con.NextReader()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if messageType != websocket.BinaryMessage {
			continue
		}
		s := model.Snapshot{}
		if err := gob.NewDecoder(r).Decode(&s); err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}
		onSnapshot(s)
	}
}
