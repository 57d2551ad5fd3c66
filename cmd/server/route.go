package main

import (
	"fmt"
	"net/http"
)

const URI_SESSION = "/session"

func (s *Server) routes() {
	s.router = s.Hub.Routes()
	s.router.HandleFunc("GET", URI_SESSION, s.handleSession())
}

func (s *Server) handleSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintln(w, s.Game.Session)
	}
}
