package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/jacksrivastava/shortly/internal/clicks"
	"github.com/jacksrivastava/shortly/internal/config"
	"github.com/jacksrivastava/shortly/internal/ratelimit"
	"github.com/jacksrivastava/shortly/internal/repository/sqlite"
	"github.com/jacksrivastava/shortly/internal/service"
	"github.com/jacksrivastava/shortly/internal/shortener"
	"github.com/jacksrivastava/shortly/internal/transport/client"
	httpTransport "github.com/jacksrivastava/shortly/internal/transport/http"
)

var rootCmd = &cobra.Command{
	Use:   "shortly",
	Short: "A URL shortening service written in Go",
	Long:  "A URL shortening service with SQLite persistence, click analytics, and a Redis-backed rate limiter on the creation endpoint",
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the URL shortening server",
	RunE:  runServer,
}

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for interacting with the server",
}

var shortenCmd = &cobra.Command{
	Use:   "shorten [URL]",
	Short: "Create a short link",
	Args:  cobra.ExactArgs(1),
	RunE:  runShorten,
}

var statsCmd = &cobra.Command{
	Use:   "stats [SHORT_CODE]",
	Short: "Show click statistics for a short link",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all short links",
	RunE:  runList,
}

func init() {
	// Server command flags; unset flags fall back to the environment
	serverCmd.Flags().StringP("port", "p", "", "Server port (PORT)")
	serverCmd.Flags().String("base-url", "", "Base URL used to build short links (BASE_URL)")
	serverCmd.Flags().String("db-path", "", "Database file path (DATABASE_PATH)")
	serverCmd.Flags().String("redis-addr", "", "Redis address for the rate limit counters (REDIS_ADDR)")
	serverCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging (HTTP requests/responses)")

	// Client command flags
	clientCmd.PersistentFlags().StringP("server-url", "u", "http://localhost:8080", "Server URL")
	shortenCmd.Flags().String("code", "", "Custom short code")

	clientCmd.AddCommand(shortenCmd, statsCmd, listCmd)
	rootCmd.AddCommand(serverCmd, clientCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Explicit flags win over environment values
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetString("port")
	}
	if cmd.Flags().Changed("base-url") {
		cfg.Server.BaseURL, _ = cmd.Flags().GetString("base-url")
	}
	if cmd.Flags().Changed("db-path") {
		cfg.Database.Path, _ = cmd.Flags().GetString("db-path")
	}
	if cmd.Flags().Changed("redis-addr") {
		cfg.Redis.Addr, _ = cmd.Flags().GetString("redis-addr")
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Logging.Verbose, _ = cmd.Flags().GetBool("verbose")
	}

	log.Printf("Starting shortly server with config: port=%s", cfg.Server.Port)

	// Initialize database
	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize the rate limit counter store. An unreachable Redis is
	// only logged: limiter errors fail open at request time, so the
	// service comes up regardless.
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Printf("Warning: redis unreachable at %s, rate limiter will fail open: %v", cfg.Redis.Addr, err)
	}
	pingCancel()

	counterStore := ratelimit.NewRedisCounterStore(redisClient)
	defer func() {
		if err := counterStore.Close(); err != nil {
			log.Printf("Error closing counter store: %v", err)
		}
	}()

	limiter := ratelimit.NewFixedWindow(counterStore, cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)

	// Start the background click recorder
	recorder := clicks.NewRecorder(repo)
	recorder.Start()

	// Initialize the service
	generator := shortener.NewRandomGenerator()
	links := service.NewLinkService(repo, generator, recorder)
	defer func() {
		if err := links.Close(); err != nil {
			log.Printf("Error closing link service: %v", err)
		}
	}()

	// Create and start HTTP server
	server := httpTransport.NewServer(links, limiter, cfg.Server.Port, cfg.Server.BaseURL, cfg.Logging.Verbose)

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	select {
	case err := <-errChan:
		recorder.Stop()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down gracefully...", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error during server shutdown: %v", err)
		}

		// Drain pending click updates before closing the repository
		recorder.Stop()
	}

	log.Println("Server stopped")
	return nil
}

func runShorten(cmd *cobra.Command, args []string) error {
	serverURL, _ := cmd.Flags().GetString("server-url")
	customCode, _ := cmd.Flags().GetString("code")
	commands := client.NewCommands(client.NewClient(serverURL))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return commands.Shorten(ctx, args[0], customCode)
}

func runStats(cmd *cobra.Command, args []string) error {
	serverURL, _ := cmd.Flags().GetString("server-url")
	commands := client.NewCommands(client.NewClient(serverURL))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return commands.Stats(ctx, args[0])
}

func runList(cmd *cobra.Command, args []string) error {
	serverURL, _ := cmd.Flags().GetString("server-url")
	commands := client.NewCommands(client.NewClient(serverURL))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return commands.List(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
