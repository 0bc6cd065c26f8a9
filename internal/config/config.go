// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the configuration directory name.
	AppName = "textutils"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"

	// maxFileSize bounds the config file read into memory.
	maxFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the per-user textutils directory: %APPDATA% on Windows,
// ~/Library/Application Support on macOS and $XDG_CONFIG_HOME (default
// ~/.config) elsewhere.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	root, err := userConfigRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, AppName), nil
}

func userConfigRoot() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	}

	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

// loadWithOptions loads the configuration and reports which file it came
// from. An empty path means defaults were used.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("load config canceled: %w", err)
	}

	path, err := resolveConfigFile(opts)
	if err != nil {
		return nil, "", err
	}

	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("log_timestamps", defaults.LogTimestamps)

	if path != "" {
		values, err := decodeCUEFile(path)
		if err != nil {
			return nil, "", err
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, "", fmt.Errorf("failed to merge config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, path, nil
}

// resolveConfigFile picks the file to load. An explicit file must exist; the
// file in the config directory is optional.
func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !isRegularFile(opts.ConfigFilePath) {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, opts.ConfigFilePath)
		}
		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", err
		}
	}
	if candidate := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt); isRegularFile(candidate) {
		return candidate, nil
	}
	return "", nil
}

// decodeCUEFile validates path against #Config and returns its fields as a
// map for viper. Fields are optional, so values need not be concrete.
func decodeCUEFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", path, len(data), maxFileSize)
	}

	cctx := cuecontext.New()
	schema := cctx.CompileString(configSchema)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("internal error: failed to compile config schema: %w", err)
	}

	file := cctx.CompileBytes(data, cue.Filename(path))
	if err := file.Err(); err != nil {
		return nil, FormatError(err, path)
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(file)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return nil, FormatError(err, path)
	}

	var values map[string]any
	if err := unified.Decode(&values); err != nil {
		return nil, FormatError(err, path)
	}
	return values, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
