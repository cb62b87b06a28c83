// Package server implements the HTTP JSON API: a solve endpoint and a
// health check, routed with gorilla/mux. Grounded on the teacher's
// internal/web/server.go (router setup via mux.NewRouter, a Server struct
// wrapping it, Start(addr) over net/http.ListenAndServe), trimmed to the
// two routes spec.md's external interface actually defines — the
// teacher's static file server, HTML index/terminal pages, and the
// os/exec-backed /api/exec endpoint have no place here (see DESIGN.md).
package server

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type Server struct {
	router *mux.Router
}

func NewServer() *Server {
	s := &Server{router: mux.NewRouter()}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods(http.MethodPost)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
}

func (s *Server) Start(addr string) error {
	log.Printf("server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
