package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ascend-community/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	plans  *service.PlanService
}

// NewServer creates a new server instance. The plan service is kept so
// shutdown can drain pending snapshot saves.
func NewServer(router *gin.Engine, plans *service.PlanService) *Server {
	return &Server{
		router: router,
		plans:  plans,
	}
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully
func (s *Server) Start(host, port string) error {
	srv := &http.Server{
		Addr:    host + ":" + port,
		Handler: s.router,
	}

	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	// Drain queued plan snapshots so no accepted edit is lost.
	s.plans.WaitForSaves()

	return nil
}
