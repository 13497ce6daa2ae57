package util

import (
	"github.com/spf13/viper"
)

type Config struct {
	Environment       string   `mapstructure:"ENVIRONMENT"`
	DBSource          string   `mapstructure:"DB_SOURCE"`
	MigrationURL      string   `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress string   `mapstructure:"HTTP_SERVER_ADDRESS"`
	AllowedOrigins    []string `mapstructure:"ALLOWED_ORIGINS"`
	// When enabled, attribute and relationship keys of incoming JSON:API
	// documents are translated from their wire format to underscore_case.
	JSONAPIFormatKeys bool `mapstructure:"JSONAPI_FORMAT_KEYS"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
