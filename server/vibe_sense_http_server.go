package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"vs-server/config"
)

type VibeSenseHttpServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewVibeSenseHttpServer(router *Router, muxRouter *mux.Router) *VibeSenseHttpServer {
	return &VibeSenseHttpServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start registers the routes and serves until an interrupt or termination
// signal arrives, then drains in-flight requests before exiting.
func (s *VibeSenseHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    config.SERVER_ADDRESS,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		fmt.Println("Starting server on " + config.SERVER_ADDRESS)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	fmt.Println("\nShutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
