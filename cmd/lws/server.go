package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type server struct {
	*http.Server
	router *mux.Router
}

func newServer(addr string) *server {
	router := mux.NewRouter()
	return &server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		router: router,
	}
}
