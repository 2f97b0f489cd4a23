// Package config turns flags, QRKEYS_* environment variables, an optional
// qrkeys.yaml and a .env file into a validated Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kamikazebr/qrkeys/internal/encoder"
	"github.com/kamikazebr/qrkeys/internal/logging"
	"github.com/kamikazebr/qrkeys/internal/payload"
	"github.com/kamikazebr/qrkeys/internal/render"
	"github.com/kamikazebr/qrkeys/pkg/utils"
)

const (
	EnvPrefix  = "qrkeys"
	ConfigName = "qrkeys"
)

// Flag names double as viper keys.
const (
	FlagFactory         = "factory"
	FlagOptimize        = "optimize"
	FlagServer          = "server"
	FlagUsername        = "username"
	FlagPort            = "port"
	FlagOutputDir       = "output-dir"
	FlagErrorCorrection = "error-correction"
	FlagBoxSize         = "box-size"
	FlagBorder          = "border"
	FlagPrint           = "print"
	FlagVerbose         = "verbose"
	FlagConfig          = "config"

	// KeyDirectory has no flag; it comes from the positional argument, the
	// environment or the config file.
	KeyDirectory = "directory"
)

type Config struct {
	Factory    *render.Factory
	Optimize   *int                // nil: the encoder picks its own segmentation
	Connection *payload.Connection // nil: plain mode
	Directory  string
	OutputDir  string
	Level      encoder.Level
	Render     render.Options
	Print      bool
	Verbose    bool
}

// localUsername is the last resort for the connection username.
var localUsername = func() string {
	name, _, _ := utils.GetActualUser()
	return name
}

// RegisterFlags defines the qrkeys flags on cmd.
func RegisterFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String(FlagFactory, "", fmt.Sprintf(
		"Rendering strategy: a shortcut (%s) or a qualified identifier (%s)",
		strings.Join(render.Shortcuts(), ", "), strings.Join(render.Identifiers(), ", ")))
	flags.Int(FlagOptimize, 0, "Chunk threshold: payloads mixing modes with runs of at least this many characters are segmented by the encoder, others are encoded as one segment; 0 always uses one segment (unset: the encoder decides)")
	flags.String(FlagServer, "", "Server as host or user@host; encodes a connection descriptor instead of the bare key")
	flags.String(FlagUsername, "", "Username for the connection descriptor (overrides user@ in --server)")
	flags.Int(FlagPort, payload.DefaultPort, "Port for the connection descriptor")
	flags.StringP(FlagOutputDir, "o", ".", "Directory the images are written to")
	flags.StringP(FlagErrorCorrection, "e", encoder.DefaultLevel.String(), "Error correction level: L, M, Q or H")
	flags.Int(FlagBoxSize, render.DefaultBoxSize, "Pixels per module for raster output")
	flags.Int(FlagBorder, render.DefaultBorder, "Quiet zone width in modules")
	flags.Bool(FlagPrint, false, "Also print each QR code to stdout")
	flags.BoolP(FlagVerbose, "v", false, "Enable debug logging")
	flags.String(FlagConfig, "", "Config file (default qrkeys.yaml in the user config dir or the current dir)")
}

// Load resolves the configuration for one run. Precedence is flag, then
// QRKEYS_* environment, then config file, then default. args holds the
// positional arguments (at most one: the key directory).
func Load(cmd *cobra.Command, args []string) (*Config, error) {
	// A bad --factory is rejected before .env or any config file is read.
	if flag := cmd.Flags().Lookup(FlagFactory); flag != nil && flag.Changed {
		if _, err := render.Resolve(flag.Value.String()); err != nil {
			return nil, Usage(err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	// .env only fills variables that are not already set
	envErr := godotenv.Load()

	if err := readConfigFile(v, v.GetString(FlagConfig)); err != nil {
		return nil, err
	}

	cfg := &Config{
		Print:   v.GetBool(FlagPrint),
		Verbose: v.GetBool(FlagVerbose),
	}
	logging.SetVerbose(cfg.Verbose)
	if envErr != nil {
		logging.Debugf("No .env file loaded: %v", envErr)
	}

	factory, err := render.Resolve(v.GetString(FlagFactory))
	if err != nil {
		return nil, Usage(err)
	}
	cfg.Factory = factory

	if v.IsSet(FlagOptimize) {
		n, err := intValue(v, FlagOptimize)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, usagef("--%s must not be negative, got %d", FlagOptimize, n)
		}
		cfg.Optimize = &n
	}

	if cfg.Level, err = encoder.ParseLevel(v.GetString(FlagErrorCorrection)); err != nil {
		return nil, Usage(err)
	}

	if cfg.Render.BoxSize, err = intValue(v, FlagBoxSize); err != nil {
		return nil, err
	}
	if cfg.Render.Border, err = intValue(v, FlagBorder); err != nil {
		return nil, err
	}
	if cfg.Render.BoxSize < 1 {
		return nil, usagef("--%s must be at least 1, got %d", FlagBoxSize, cfg.Render.BoxSize)
	}
	if cfg.Render.Border < 0 {
		return nil, usagef("--%s must not be negative, got %d", FlagBorder, cfg.Render.Border)
	}

	if cfg.Connection, err = loadConnection(v); err != nil {
		return nil, err
	}

	if cfg.Directory, err = resolveDirectory(v, args); err != nil {
		return nil, err
	}

	cfg.OutputDir = v.GetString(FlagOutputDir)
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, ConfigName))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && path == "" {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	logging.Debugf("Using config file %s", v.ConfigFileUsed())
	return nil
}

// loadConnection builds the connection descriptor settings, or nil when no
// server was given.
func loadConnection(v *viper.Viper) (*payload.Connection, error) {
	port, err := intValue(v, FlagPort)
	if err != nil {
		return nil, err
	}

	if !v.IsSet(FlagServer) {
		if v.IsSet(FlagUsername) || v.IsSet(FlagPort) {
			return nil, usagef("--%s and --%s require --%s", FlagUsername, FlagPort, FlagServer)
		}
		return nil, nil
	}

	user, host, err := payload.ParseServer(v.GetString(FlagServer))
	if err != nil {
		return nil, Usage(err)
	}
	if name := v.GetString(FlagUsername); name != "" {
		user = name
	}
	if user == "" {
		user = localUsername()
		logging.Debugf("No username given, using local account %q", user)
	}
	if user == "" {
		return nil, usagef("cannot determine a username: pass --%s or --%s user@host", FlagUsername, FlagServer)
	}

	conn := &payload.Connection{User: user, Host: host, Port: port}
	if err := conn.Validate(); err != nil {
		return nil, Usage(err)
	}
	return conn, nil
}

func resolveDirectory(v *viper.Viper, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if v.IsSet(KeyDirectory) {
		return v.GetString(KeyDirectory), nil
	}

	home := os.Getenv("HOME")
	if home == "" {
		return "", fmt.Errorf("%w: pass the key directory as an argument", ErrNoHome)
	}
	return filepath.Join(home, ".ssh"), nil
}

// intValue reads key as an integer. Flags are already validated by pflag;
// this catches non-numeric environment and config file values.
func intValue(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, usagef("--%s expects an integer, got %q", key, raw)
	}
	return n, nil
}
