package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/save-a-life/cmd/cli/commands"
	"github.com/jakechorley/save-a-life/internal/config"
	"github.com/jakechorley/save-a-life/internal/storage"
	"github.com/jakechorley/save-a-life/pkg/alert"
	"github.com/jakechorley/save-a-life/pkg/clients/gmailclient"
	"github.com/jakechorley/save-a-life/pkg/db"
	"github.com/jakechorley/save-a-life/pkg/utils/logging"
)

var (
	env        string
	app        = &commands.AppContext{}
	repository *db.Repository
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Save A Life CLI - Coordinate blood requests and donations",
		Long:  `A CLI tool for registering donors, recipients, hospitals and blood banks, raising blood requests, booking donations and viewing role dashboards.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if repository != nil {
				if err := repository.Close(); err != nil && app.Logger != nil {
					app.Logger.Warn("Failed to close store", zap.Error(err))
				}
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.RegisterCmd(app))
	rootCmd.AddCommand(commands.LoginCmd(app))
	rootCmd.AddCommand(commands.LogoutCmd(app))
	rootCmd.AddCommand(commands.WhoamiCmd(app))
	rootCmd.AddCommand(commands.RequestBloodCmd(app))
	rootCmd.AddCommand(commands.ListRequestsCmd(app))
	rootCmd.AddCommand(commands.RequestDetailsCmd(app))
	rootCmd.AddCommand(commands.UpdateRequestCmd(app))
	rootCmd.AddCommand(commands.ScheduleDonationCmd(app))
	rootCmd.AddCommand(commands.ListAppointmentsCmd(app))
	rootCmd.AddCommand(commands.UpdateAppointmentCmd(app))
	rootCmd.AddCommand(commands.NotificationsCmd(app))
	rootCmd.AddCommand(commands.MarkReadCmd(app))
	rootCmd.AddCommand(commands.NotifyCmd(app))
	rootCmd.AddCommand(commands.DashboardCmd(app))
	rootCmd.AddCommand(commands.FindDonorsCmd(app))
	rootCmd.AddCommand(commands.BloodBanksCmd(app))
	rootCmd.AddCommand(commands.ServeCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, store, alert sinks and dashboard options
func initApp() error {
	var err error
	app.Env = env
	app.Ctx = context.Background()
	app.Out = os.Stdout

	// Initialize logger
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.DashboardOptions, err = app.Cfg.DashboardOptions()
	if err != nil {
		return fmt.Errorf("failed to build dashboard options: %w", err)
	}

	// Open the key-value store
	app.Logger.Info("Opening store", zap.String("backend", app.Cfg.Store.Backend))
	store, err := storage.Open(app.Ctx, app.Cfg.Store, app.Logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	repository = db.NewRepository(store, app.Logger)
	app.Database = repository
	app.Logger.Info("Store opened successfully")

	app.Alerter, err = initAlerter()
	if err != nil {
		return err
	}

	return nil
}

// initAlerter always logs alerts, and adds the console toast and Gmail sinks when configured
func initAlerter() (alert.Alerter, error) {
	multi := alert.NewMulti(app.Logger).Add("log", alert.NewLog(app.Logger))

	if app.Cfg.Alerts.Console {
		multi.Add("console", alert.NewConsole(app.Out))
	}

	if emailCfg := app.Cfg.Alerts.Email; emailCfg != nil {
		app.Logger.Info("Loading OAuth client configuration")
		oauthCfg, err := config.LoadOAuthClientWithEnv(env)
		if err != nil {
			return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
		}

		app.Logger.Info("Initializing gmail client")
		gmailClient, err := gmailclient.NewClient(app.Ctx, oauthCfg, env, emailCfg.Sender, app.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create gmail client: %w", err)
		}
		multi.Add("email", alert.NewEmail(gmailClient, emailCfg.To))
		app.Logger.Debug("Gmail client initialized successfully")
	}

	app.Logger.Debug("Alert sinks configured", zap.Int("sinks", multi.Len()))
	return multi, nil
}
