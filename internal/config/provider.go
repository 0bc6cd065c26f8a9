// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions selects where configuration is read from. The zero value
	// uses the platform config directory.
	LoadOptions struct {
		// ConfigFilePath names a file that must exist.
		ConfigFilePath string
		// ConfigDirPath replaces ConfigDir() when set.
		ConfigDirPath string
	}

	// Loaded is a decoded configuration and the file it came from.
	Loaded struct {
		Config *Config
		// Path is empty when no file was found and defaults apply.
		Path string
	}

	// Provider loads configuration.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Loaded, error)
	}

	fileProvider struct{}
)

// NewProvider returns a Provider backed by CUE files merged into viper.
func NewProvider() Provider {
	return fileProvider{}
}

func (fileProvider) Load(ctx context.Context, opts LoadOptions) (*Loaded, error) {
	cfg, path, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Loaded{Config: cfg, Path: path}, nil
}
