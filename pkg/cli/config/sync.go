package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Sync holds sync scheduling configuration
type Sync struct {
	TargetsFile string
	Interval    time.Duration
}

// Flags returns CLI flags for Sync configuration
func (s *Sync) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sync-targets",
			Usage:       "Path to YAML file listing directory groups to synchronize",
			Category:    "Sync",
			Sources:     cli.EnvVars("THEMIS_SYNC_TARGETS"),
			Destination: &s.TargetsFile,
		},
		&cli.DurationFlag{
			Name:        "sync-interval",
			Usage:       "Interval between periodic sync runs (0 disables periodic sync)",
			Category:    "Sync",
			Value:       0,
			Sources:     cli.EnvVars("THEMIS_SYNC_INTERVAL"),
			Destination: &s.Interval,
		},
	}
}

// IsConfigured checks if a targets file is set
func (s *Sync) IsConfigured() bool {
	return s.TargetsFile != ""
}

// LogValue returns structured log value
func (s Sync) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("targets_file", s.TargetsFile),
		slog.Duration("interval", s.Interval),
	)
}

// LoadTargets loads the sync targets from the configured YAML file
func (s *Sync) LoadTargets() (*model.SyncTargetsConfig, error) {
	return LoadSyncTargetsFromFile(s.TargetsFile)
}

// LoadSyncTargetsFromFile loads sync targets from a YAML file
func LoadSyncTargetsFromFile(path string) (*model.SyncTargetsConfig, error) {
	if path == "" {
		return nil, goerr.New("sync targets file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "sync targets file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read sync targets file",
			goerr.V("path", path))
	}

	var config model.SyncTargetsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML sync targets",
			goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid sync targets",
			goerr.V("path", path))
	}

	return &config, nil
}
