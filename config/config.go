package config

import (
	logger "github.com/Bparsons0904/goLogger"

	"github.com/spf13/viper"
)

type Config struct {
	GeneralVersion     string `mapstructure:"GENERAL_VERSION"`
	Environment        string `mapstructure:"ENVIRONMENT"`
	ServerPort         int    `mapstructure:"SERVER_PORT"`
	DatabaseHost       string `mapstructure:"DB_HOST"`
	DatabasePort       int    `mapstructure:"DB_PORT"`
	DatabaseName       string `mapstructure:"DB_NAME"`
	DatabaseUser       string `mapstructure:"DB_USER"`
	DatabasePassword   string `mapstructure:"DB_PASSWORD"`
	CacheAddress       string `mapstructure:"CACHE_ADDRESS"`
	CachePort          int    `mapstructure:"CACHE_PORT"`
	CorsAllowOrigins   string `mapstructure:"CORS_ALLOW_ORIGINS"`
	OIDCIssuerURL      string `mapstructure:"OIDC_ISSUER_URL"`
	OIDCClientID       string `mapstructure:"OIDC_CLIENT_ID"`
	OperatorName       string `mapstructure:"OPERATOR_NAME"`
	SpotifyAPIURL      string `mapstructure:"SPOTIFY_API_URL"`
	SchedulerEnabled   bool   `mapstructure:"SCHEDULER_ENABLED"`
}

var ConfigInstance Config

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")
	log.Info("Initializing config")

	viper.AutomaticEnv()

	envVars := []string{
		"GENERAL_VERSION", "ENVIRONMENT", "SERVER_PORT",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"CACHE_ADDRESS", "CACHE_PORT",
		"CORS_ALLOW_ORIGINS",
		"OIDC_ISSUER_URL", "OIDC_CLIENT_ID",
		"OPERATOR_NAME", "SPOTIFY_API_URL", "SCHEDULER_ENABLED",
	}

	for _, env := range envVars {
		if err := viper.BindEnv(env); err != nil {
			log.Warn("Failed to bind environment variable", "env", env, "error", err)
		}
	}

	envVarsSet := viper.IsSet("SERVER_PORT") && viper.IsSet("DB_HOST")

	if envVarsSet {
		log.Info("Environment variables detected, skipping file loading")
	} else {
		log.Info("Environment variables not found, attempting to load from files")

		viper.SetConfigFile(".env")
		viper.SetConfigType("env")

		if err := viper.ReadInConfig(); err != nil {
			log.Warn("Could not find .env file", "error", err)
		} else {
			log.Info("Loaded .env file")
		}

		viper.SetConfigFile(".env.local")
		if err := viper.MergeInConfig(); err != nil {
			log.Debug("No .env.local file found", "error", err)
		} else {
			log.Info("Loaded .env.local overrides")
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, log.Err("Fatal error: could not unmarshal config", err)
	}

	if config.SpotifyAPIURL == "" {
		config.SpotifyAPIURL = "https://api.spotify.com/v1"
	}

	if err := validateConfig(config, log); err != nil {
		return Config{}, err
	}
	return ConfigInstance, nil
}

func GetConfig() Config {
	return ConfigInstance
}

func validateConfig(config Config, log logger.Logger) error {
	if config.ServerPort <= 0 {
		return log.Error(
			"Fatal error: invalid server port",
			"port", config.ServerPort,
		)
	}

	if config.OperatorName == "" {
		return log.ErrMsg("Fatal error: OPERATOR_NAME is required")
	}

	if config.OIDCIssuerURL == "" || config.OIDCClientID == "" {
		return log.ErrMsg("Fatal error: OIDC_ISSUER_URL and OIDC_CLIENT_ID are required")
	}

	ConfigInstance = config
	return nil
}
