package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration
	OpenAIKey string `mapstructure:"OPENAI_API_KEY"` // API key for OpenAI
	ModelID   string `mapstructure:"MODEL_ID"`       // e.g., "gpt-4o"

	// Generation Configuration
	WorkspaceRoot          string `mapstructure:"WORKSPACE_ROOT"`           // Directory that generated projects are written under
	GenerateTimeoutSeconds int    `mapstructure:"GENERATE_TIMEOUT_SECONDS"` // Upper bound on the model call per request

	// Dependency Install Configuration
	InstallCommand string `mapstructure:"INSTALL_COMMAND"` // e.g., "npm install"; empty disables the install step
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	// Defaults double as the key registry: AutomaticEnv only resolves keys
	// viper already knows about when unmarshalling into a struct.
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("MODEL_ID", "gpt-4o")
	viper.SetDefault("WORKSPACE_ROOT", "")
	viper.SetDefault("GENERATE_TIMEOUT_SECONDS", 60)
	viper.SetDefault("INSTALL_COMMAND", "npm install")

	viper.AutomaticEnv() // Read environment variables that match keys

	// Attempt to read the config file
	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Required fields: there is no meaningful degraded mode without them.
	if config.OpenAIKey == "" {
		return Config{}, errors.New("OPENAI_API_KEY is required")
	}
	if config.WorkspaceRoot == "" {
		return Config{}, errors.New("WORKSPACE_ROOT is required")
	}

	return
}
