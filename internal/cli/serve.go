package cli

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/themizzi/sauceshop/internal/config"
)

// ServerDependencies holds all dependencies needed for the server
type ServerDependencies struct {
	ServerConfig    config.ServerConfig
	LoginHandler    http.Handler
	ProductsHandler http.Handler
	CartHandler     http.Handler
	CheckoutHandler http.Handler
	OrderHandler    http.Handler
}

// NewRouter mounts the API routes. Handlers check methods themselves.
func NewRouter(deps ServerDependencies) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/login", deps.LoginHandler)
	mux.Handle("/products", deps.ProductsHandler)
	mux.Handle("/cart", deps.CartHandler)
	mux.Handle("/cart/items", deps.CartHandler)
	mux.Handle("/cart/items/{id}", deps.CartHandler)
	mux.Handle("/checkout", deps.CheckoutHandler)
	mux.Handle("/orders/{id}", deps.OrderHandler)
	return mux
}

// RunServe starts the API server and blocks until SIGINT or SIGTERM
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil, deps.ServerConfig.ShutdownTimeout)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	server := &http.Server{
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a signal and shuts the server down, allowing
// in-flight requests up to timeout to finish. A nil shutdown channel is
// replaced with one registered for SIGINT and SIGTERM; a zero timeout means 30s.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal, timeout time.Duration) error {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	sig := <-shutdown
	log.Printf("Received signal: %v, shutting down server...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		// Force close once the grace period is exhausted
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Println("Server stopped")
	return nil
}
