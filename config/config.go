package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/drummonds/goOrders/router"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// EnvPrefix prefixes environment overrides, GOORDERS_SERVERCONFIG_SERVERPORT for example
const EnvPrefix = "GOORDERS"

// ServerConfig contains all of the server settings defined in the TOML file
type ServerConfig struct {
	ListenAddrIP   string
	ListenAddrPort string
	WebDir         string //directory holding app.wasm and the static assets
	HistoryMode    router.HistoryMode
	FrontEndConfig
}

// FrontEndConfig stores all of the frontend settings
type FrontEndConfig struct {
	Name        string
	Title       string
	Description string
	MountTarget string
}

// Addr returns the address the server listens on
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.ListenAddrIP, c.ListenAddrPort)
}

// SetDefaults registers the defaults used when a key is missing from the file
func SetDefaults(v *viper.Viper) {
	v.SetDefault("serverConfig.ServerAddr", "")
	v.SetDefault("serverConfig.ServerPort", "8000")
	v.SetDefault("webapp.Name", "goOrders")
	v.SetDefault("webapp.Title", "Orders")
	v.SetDefault("webapp.Description", "Orders and reports")
	v.SetDefault("webapp.MountTarget", "app")
	v.SetDefault("webapp.WebDir", "web")
	v.SetDefault("webapp.HistoryMode", "web")
	v.SetDefault("logging.Level", "warn")
	v.SetDefault("logging.OutputPath", "stdout")
	v.SetDefault("logging.LogFileLocation", "goOrders.log")
}

// NewViper creates a viper instance reading serverConfig.toml from config/ or
// the working directory, or configFile when it is set
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath("config/")
		v.AddConfigPath(".")
		v.SetConfigName("serverConfig")
		v.SetConfigType("toml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetupServer does the initial configuration
func SetupServer(v *viper.Viper) (ServerConfig, *slog.Logger, error) {
	var serverConfigLive ServerConfig
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return serverConfigLive, nil, fmt.Errorf("loading .env: %w", err)
	}
	err := v.ReadInConfig() // Find and read the config file
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return serverConfigLive, nil, fmt.Errorf("fatal error config file: %w", err)
	}
	logger, err := setupLogging(v)
	if err != nil {
		return serverConfigLive, nil, err
	}
	if v.ConfigFileUsed() == "" {
		logger.Info("No config file found, using defaults")
	} else {
		logger.Info("Config file loaded", "path", v.ConfigFileUsed())
	}

	serverConfigLive.ListenAddrIP = v.GetString("serverConfig.ServerAddr")
	serverConfigLive.ListenAddrPort = v.GetString("serverConfig.ServerPort")
	webDir, err := filepath.Abs(filepath.ToSlash(v.GetString("webapp.WebDir")))
	if err != nil {
		logger.Error("Failed creating absolute path for web directory", "error", err)
		webDir = v.GetString("webapp.WebDir")
	}
	serverConfigLive.WebDir = webDir
	serverConfigLive.HistoryMode = router.ParseHistoryMode(v.GetString("webapp.HistoryMode"))
	serverConfigLive.FrontEndConfig = setupFrontEnd(v)
	logger.Info("Base Logger is setup!", "addr", serverConfigLive.Addr(), "webDir", serverConfigLive.WebDir)
	return serverConfigLive, logger, nil
}

func setupFrontEnd(v *viper.Viper) FrontEndConfig {
	return FrontEndConfig{
		Name:        v.GetString("webapp.Name"),
		Title:       v.GetString("webapp.Title"),
		Description: v.GetString("webapp.Description"),
		MountTarget: v.GetString("webapp.MountTarget"),
	}
}

// ParseLevel maps a config level to slog, anything unknown is warn
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func setupLogging(v *viper.Viper) (*slog.Logger, error) {
	var logWriter io.Writer = os.Stdout
	if v.GetString("logging.OutputPath") == "file" {
		logPath, err := filepath.Abs(filepath.ToSlash(v.GetString("logging.LogFileLocation")))
		if err != nil {
			return nil, fmt.Errorf("unable to create log file path: %w", err)
		}
		logFile, err := os.Create(logPath)
		if err != nil {
			return nil, fmt.Errorf("unable to create log file: %w", err)
		}
		logWriter = logFile
	}

	opts := &slog.HandlerOptions{
		Level: ParseLevel(v.GetString("logging.Level")),
	}
	return slog.New(slog.NewTextHandler(logWriter, opts)), nil
}
