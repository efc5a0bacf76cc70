package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-webpack-config/internal/logger"
	"github.com/MKhiriev/go-webpack-config/models"
)

type configBuilder struct {
	configs []*models.AppConfiguration
	file    *models.AppConfiguration
	source  string
	log     *logger.Logger
	err     error
}

func newConfigBuilder(log *logger.Logger) *configBuilder {
	if log == nil {
		log = logger.Nop()
	}
	return &configBuilder{
		configs: make([]*models.AppConfiguration, 0, 3),
		log:     log,
	}
}

// build merges the collected layers in order. mergo.Merge only fills fields
// that are still empty, so earlier layers take precedence.
func (b *configBuilder) build() (*AppConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during loading app config: %w", b.err)
	}

	merged := new(models.AppConfiguration)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging app configs: %w", err)
		}
	}

	var sassAdditionalData string
	if b.file != nil {
		sassAdditionalData = b.file.SassAdditionalData
	}

	return &AppConfig{
		cfg:    *merged,
		css:    newCSSConfig(merged.CSS, sassAdditionalData),
		source: b.source,
	}, nil
}

func (b *configBuilder) withFile(rootPath string) *configBuilder {
	path, found, err := findAppConfigFile(rootPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if !found {
		b.log.Debug().Str("root", rootPath).Msg("no app config file found, using defaults")
		return b
	}

	fileCfg, err := parseAppConfigFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.log.Debug().Str("file", path).Msg("loaded app config file")
	b.file = fileCfg
	b.source = path
	b.configs = append(b.configs, fileCfg)
	return b
}

// withLegacyFields maps field names of older project files onto the current
// ones.
func (b *configBuilder) withLegacyFields() *configBuilder {
	if b.file == nil || b.file.DistDir == "" {
		return b
	}

	b.configs = append(b.configs, &models.AppConfiguration{OutputDir: b.file.DistDir})
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultAppConfiguration())
	return b
}
