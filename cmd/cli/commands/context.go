package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/meeting-scheduler/internal/config"
	"github.com/jakechorley/meeting-scheduler/pkg/clients/sheetsclient"
	"github.com/jakechorley/meeting-scheduler/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Env      string
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context

	sheetsClient *sheetsclient.Client
}

// SheetsClient returns the Google Sheets client, authenticating on first use so that
// commands which never touch a spreadsheet do not need OAuth credentials
func (a *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if a.sheetsClient != nil {
		return a.sheetsClient, nil
	}

	if a.Cfg.Sheets == nil {
		return nil, fmt.Errorf("no sheets section in config")
	}

	a.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(a.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	a.Logger.Info("Initializing sheets client")
	client, err := sheetsclient.NewClient(a.Ctx, oauthCfg, a.Env, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	a.sheetsClient = client
	return client, nil
}
