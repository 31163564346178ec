package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"gitlab.com/algoarena-2025.net/internal/adapter/crypto"
	"gitlab.com/algoarena-2025.net/internal/adapter/httpapi"
	"gitlab.com/algoarena-2025.net/internal/adapter/sqlite/localstate"
	"gitlab.com/algoarena-2025.net/internal/cli"
	"gitlab.com/algoarena-2025.net/internal/config"
	"gitlab.com/algoarena-2025.net/internal/core/services/auth"
	"gitlab.com/algoarena-2025.net/internal/core/services/catalog"
	"gitlab.com/algoarena-2025.net/internal/core/services/dashboard"
	"gitlab.com/algoarena-2025.net/internal/core/services/generate"
	"gitlab.com/algoarena-2025.net/internal/core/services/session"
	"gitlab.com/algoarena-2025.net/internal/core/services/solve"
	logger2 "gitlab.com/algoarena-2025.net/internal/global/logger"
)

func main() {
	// A .env beside the binary is optional; environment variables win
	// either way.
	_ = godotenv.Load()

	logger := logger2.Logger
	sysCfg := config.NewSystemConfig()

	key, err := crypto.LoadOrCreateKey(sysCfg.LocalStoreCfg.KeyPath)
	if err != nil {
		fatal("prepare sealing key", err)
	}
	sealer, err := crypto.NewSecretBox(key)
	if err != nil {
		fatal("prepare sealing key", err)
	}

	db, err := localstate.Open(sysCfg.LocalStoreCfg.DatabasePath)
	if err != nil {
		fatal("open local state store", err)
	}
	store := localstate.New(db, sealer, logger)
	defer store.Close()

	tokens := crypto.NewTokenService()
	sessions := session.NewSessionService(store, tokens, logger)

	ctx := context.Background()
	gateway := httpapi.NewClient(sysCfg.APIConfig, sessions.Token, func() {
		if err := sessions.Logout(ctx); err != nil {
			logger.Error("Failed to clear expired session", "error", err)
		}
	}, logger)

	app := &cli.App{
		Auth:      auth.NewRemoteAuthService(gateway, sessions, logger),
		Sessions:  sessions,
		Catalog:   catalog.NewCatalogService(gateway, sessions, logger),
		Generate:  generate.NewGenerateService(gateway, logger),
		Solve:     solve.NewSolveService(gateway, gateway, sessions, logger),
		Dashboard: dashboard.NewDashboardService(gateway, store, sessions, logger),
		In:        os.Stdin,
		Out:       os.Stdout,
		Err:       os.Stderr,
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func fatal(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", what, err)
	os.Exit(1)
}
