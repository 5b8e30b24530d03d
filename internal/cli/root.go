// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hcsl_site/internal/api"
	"hcsl_site/internal/api/handlers"
	"hcsl_site/internal/config"
	"hcsl_site/internal/logging"
	"hcsl_site/internal/repository"
	"hcsl_site/internal/revalidate"
	"hcsl_site/internal/services"
	"hcsl_site/internal/services/auth"
)

var (
	Version   = "1.0.0"
	StartTime time.Time

	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags
	cfgFile       string
	password      string
	port          int
	logLevel      string
	sessionSecret string
	dbPath        string
	storageRoot   string
	adminDomain   string
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:   "hcslsite",
	Short: "HSC Group site API",
	Long:  `The REST API behind the public website and its admin back office: content, careers, team and event registration.`,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute is called by main.main(). It only needs to happen once.
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config_path", "config.toml", "Path to the base configuration file. (Env: HCSL_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: HCSL_LOG_LEVEL)")

	RootCmd.Flags().StringVar(&password, "password", "", "Password accepted at the admin login gate. (Env: HCSL_PASSWORD)")
	RootCmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: HCSL_PORT)")
	RootCmd.Flags().StringVar(&sessionSecret, "session-secret", "", "Secret key for signing session tokens. (Env: HCSL_SESSION_SECRET)")
	RootCmd.Flags().StringVar(&dbPath, "database-path", "", "Path to the SQLite database file. (Env: HCSL_DATABASE_PATH)")
	RootCmd.Flags().StringVar(&storageRoot, "storage-root", "", "Directory for uploaded blobs. (Env: HCSL_STORAGE_ROOT)")
	RootCmd.Flags().StringVar(&adminDomain, "admin-domain", "", "Email domain accepted at the admin login gate. (Env: HCSL_ADMIN_DOMAIN)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	if envPath := os.Getenv("HCSL_CONFIG_PATH"); envPath != "" && cfgFile == "config.toml" {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Rely on defaults and flags when no config file exists yet.
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	applyOverrides(cfg)

	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config) {
	// --- 1. Environment Variables ---
	if v := os.Getenv("HCSL_PASSWORD"); v != "" {
		c.AdminPassword = v
	}
	if v := os.Getenv("HCSL_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("HCSL_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HCSL_DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("HCSL_STORAGE_ROOT"); v != "" {
		c.Database.StorageRoot = v
	}
	if v := os.Getenv("HCSL_SESSION_SECRET"); v != "" {
		c.SessionSecret = v
	}
	if v := os.Getenv("HCSL_ADMIN_DOMAIN"); v != "" {
		c.Auth.AdminDomain = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if password != "" {
		c.AdminPassword = password
	}
	if port != 0 {
		c.Server.Port = port
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if sessionSecret != "" {
		c.SessionSecret = sessionSecret
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if storageRoot != "" {
		c.Database.StorageRoot = storageRoot
	}
	if adminDomain != "" {
		c.Auth.AdminDomain = adminDomain
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Path == "" {
		c.Database.Path = "hcsl_site.db"
	}
	if c.Database.StorageRoot == "" {
		c.Database.StorageRoot = "storage_root"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Auth.AdminDomain == "" {
		c.Auth.AdminDomain = "hscgroup.org"
	}
	if c.Auth.SessionDurationHours == 0 {
		c.Auth.SessionDurationHours = 24
	}
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	// Handle session secret
	if cfg.SessionSecret == "" {
		if cfg.Auth.Secret != "" {
			logging.Log.Info("Using session secret loaded from config.toml.")
			cfg.SessionSecret = cfg.Auth.Secret
		} else {
			logging.Log.Info("Generating new random session secret...")
			newSecret, err := auth.GenerateSecret()
			if err != nil {
				return fmt.Errorf("failed to generate session secret: %w", err)
			}
			cfg.Auth.Secret = newSecret
			cfg.SessionSecret = newSecret
			if err := config.SaveConfig(cfgFile, cfg); err != nil {
				logging.Log.Warnf("Failed to save new session secret to %s: %v", cfgFile, err)
			} else {
				logging.Log.Infof("New session secret saved to %s.", cfgFile)
			}
		}
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// --- Conditional auto-migrate on startup ---
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	if err := repo.ValidateSchema(); err != nil {
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logging.Log.Error("---------------------------------------------------------------")
		return err
	}

	// Service initialization
	views := revalidate.New(time.Hour)
	storageService, err := services.NewStorageService(cfg.Database.StorageRoot, cfg.Server.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize blob storage: %w", err)
	}
	contentService := services.NewContentService(repo, views)
	careersService := services.NewCareersService(repo, views)
	teamService := services.NewTeamService(repo, views)
	eventService := services.NewEventService(repo, views)
	statsService := services.NewStatsService(repo)
	schemaService := services.NewSchemaService(repo)

	sessionService, err := auth.NewSessionService(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize session service: %w", err)
	}
	authMiddleware := auth.NewMiddleware(sessionService)

	h := handlers.NewHandlers(
		contentService,
		careersService,
		teamService,
		eventService,
		statsService,
		schemaService,
		storageService,
		sessionService,
		views,
		cfg,
	)

	r := api.SetupRouter(h, authMiddleware, cfg.Database.StorageRoot)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful shutdown setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Server starting on %s", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
