// Package cmd wires the pawlog command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"pawlog/internal/cats/domain"
	"pawlog/internal/config"
	"pawlog/internal/infrastructure/sqlite"
	"pawlog/internal/log"
	"pawlog/internal/tracing"
)

var (
	version   = "dev"
	cfgFile   string
	debugMode bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "pawlog",
	Short:   "A small cat registry backed by SQLite",
	Long:    `Pawlog builds an in-memory registry of cats and persists each one to a SQLite database, in the order they were registered.`,
	Version: version,
	RunE:    runSeed,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/pawlog/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"write debug logs to .pawlog/debug.log")
	rootCmd.PersistentFlags().StringP("db", "d", "",
		"path to the SQLite database file")
	rootCmd.PersistentFlags().Bool("trace", false,
		"enable trace export for save operations")

	// Bind flags to viper
	_ = viper.BindPFlag("path", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("tracing.enabled", rootCmd.PersistentFlags().Lookup("trace"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("path", defaults.Path)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .pawlog/config.yaml (current directory)
		// 2. ~/.config/pawlog/config.yaml (user config)
		if _, err := os.Stat(".pawlog/config.yaml"); err == nil {
			viper.SetConfigFile(".pawlog/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "pawlog"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .pawlog/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".pawlog/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// runSeed registers the built-in starter cats and persists them.
func runSeed(cmd *cobra.Command, args []string) error {
	registry := domain.NewRegistry()
	if _, err := registry.NewCat("Maru", "scottish fold", 3); err != nil {
		return err
	}
	if _, err := registry.NewCat("Hana", "tortoiseshell", 1); err != nil {
		return err
	}
	return persistRegistry(cmd.Context(), registry)
}

// persistRegistry saves every cat in the registry to the database,
// in registration order, stopping at the first failure.
func persistRegistry(ctx context.Context, registry *domain.Registry) error {
	if debugMode || os.Getenv("PAWLOG_DEBUG") != "" {
		if closeLog, err := log.Init(filepath.Join(".pawlog", "debug.log")); err == nil {
			log.SetEnabled(true)
			defer closeLog()
		}
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Exporter == "file" && cfg.Tracing.FilePath == "" {
		cfg.Tracing.FilePath = config.DefaultTracesFilePath()
	}
	if err := config.ValidateTracing(cfg.Tracing); err != nil {
		return fmt.Errorf("invalid tracing configuration: %w", err)
	}

	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		FilePath:     cfg.Tracing.FilePath,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() { _ = provider.Shutdown(context.Background()) }()

	dbPath := cfg.Path
	if dbPath == "" {
		dbPath = config.DefaultDBPath
	}

	db, err := sqlite.NewDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	repo := db.CatRepository()
	defer func() { _ = repo.Close() }()

	runID := uuid.NewString()
	tracer := provider.Tracer()
	log.Info(log.CatRegistry, "Persisting registry", "run_id", runID, "cats", registry.Len())

	for _, cat := range registry.All() {
		_, span := tracer.Start(ctx, "cat.save")
		span.SetAttributes(
			attribute.String("run.id", runID),
			attribute.String("cat.name", cat.Name()),
		)
		if err := repo.Save(cat); err != nil {
			span.SetStatus(codes.Error, err.Error())
			span.End()
			log.ErrorErr(log.CatRegistry, "Save failed", err, "cat", cat.Name())
			return fmt.Errorf("saving %s: %w", cat.Name(), err)
		}
		span.SetStatus(codes.Ok, "")
		span.End()
		log.Debug(log.CatRegistry, "Saved cat", "name", cat.Name(), "breed", cat.Breed(), "age", cat.Age())
	}

	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
