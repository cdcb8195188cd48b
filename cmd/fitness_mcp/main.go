// Package main runs the fitness context MCP server over stdio, for local
// assistants. The backend serves the same tools over HTTP at /mcp.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iquadra-Harsh/wellness-wizard/internal/config"
	"github.com/iquadra-Harsh/wellness-wizard/internal/db"
	"github.com/iquadra-Harsh/wellness-wizard/internal/exerciselib"
	"github.com/iquadra-Harsh/wellness-wizard/internal/insights"
	fitnessmcp "github.com/iquadra-Harsh/wellness-wizard/internal/mcp"
	"github.com/iquadra-Harsh/wellness-wizard/internal/plans"
	"github.com/iquadra-Harsh/wellness-wizard/internal/stats"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout belongs to the protocol, the std logger writes to stderr
	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     cfg.PostgresPassword,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	service := fitnessmcp.NewContextService(
		stats.NewRepo(dbPool),
		plans.NewRepo(dbPool),
		exerciselib.NewRepo(dbPool, cfg.ExerciseCacheSizeMB),
		insights.NewRepo(dbPool),
	)
	server := fitnessmcp.NewServer(service)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Printf("mcp server stopped: %v", err)
	}
}
