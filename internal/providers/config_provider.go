package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"mindtrackerd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "MT_LOG_LEVEL")
	viper.BindEnv("persistence.saveInterval", "MT_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "MT_CACHE_ENABLED")
	viper.BindEnv("cache.size", "MT_CACHE_SIZE")
	viper.BindEnv("auth.mode", "MT_AUTH_MODE")
	viper.BindEnv("auth.endpoint", "MT_AUTH_ENDPOINT")
	viper.BindEnv("auth.apiKey", "MT_AUTH_API_KEY")
	viper.BindEnv("reminder.hour", "MT_REMINDER_HOUR")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "mindtrackerd"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
