package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"portfolio-cms/pkg/config"
	"portfolio-cms/pkg/models"
)

// ParseSeed decodes a seed document into a snapshot. The format is sniffed
// from the content: JSON ({...}), then YAML, then TOML. The decoded snapshot
// must satisfy the store invariants.
func ParseSeed(content []byte) (models.Snapshot, error) {
	// Check for JSON ({)
	if bytes.HasPrefix(bytes.TrimSpace(content), []byte("{")) {
		var snap models.Snapshot
		if err := json.Unmarshal(content, &snap); err != nil {
			return nil, fmt.Errorf("decode seed json: %w", err)
		}
		return validatedSeed(snap)
	}

	// Check for YAML
	{
		var snap models.Snapshot
		if err := yaml.Unmarshal(content, &snap); err == nil && len(snap) > 0 {
			return validatedSeed(snap)
		}
	}

	// Check for TOML
	{
		var snap models.Snapshot
		if err := toml.Unmarshal(content, &snap); err == nil && len(snap) > 0 {
			return validatedSeed(snap)
		}
	}

	return nil, fmt.Errorf("unknown seed format")
}

func validatedSeed(snap models.Snapshot) (models.Snapshot, error) {
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return snap, nil
}

// LoadSeedFile reads and parses a seed document from disk.
func LoadSeedFile(path string) (models.Snapshot, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(content)
}

// SeedDefaults returns the default snapshot the service should seed with:
// the configured seed file when one is set and parses, otherwise the
// built-in content.
func SeedDefaults(log *zap.Logger) models.Snapshot {
	if log == nil {
		log = zap.NewNop()
	}
	if config.SeedFile == "" {
		return models.DefaultSnapshot()
	}
	snap, err := LoadSeedFile(config.SeedFile)
	if err != nil {
		log.Warn("seed file unusable, falling back to built-in defaults",
			zap.String("path", config.SeedFile), zap.Error(err))
		return models.DefaultSnapshot()
	}
	log.Info("loaded seed file", zap.String("path", config.SeedFile))
	return snap
}
