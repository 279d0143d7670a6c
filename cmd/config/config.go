package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-palette/pkg/premium"
	"github.com/mattsolo1/grove-palette/pkg/service"
)

var cfgFile string

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "palette")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("PAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		logrus.Debugf("using config file %s", viper.ConfigFileUsed())
	}
}

// SetDefaults registers the default for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "palette"))
	v.SetDefault("catalog_dir", "")
	v.SetDefault("premium_user", false)
	v.SetDefault("premium_keywords", premium.DefaultKeywords)
	v.SetDefault("search.latency", "0s")
	v.SetDefault("search.library_latency", "")
	v.SetDefault("search.templates_latency", "")
	v.SetDefault("log_level", "warn")
}

// ServiceConfig reads a service.Config from v. Corpus latencies that are
// unset fall back to search.latency.
func ServiceConfig(v *viper.Viper) *service.Config {
	latency := v.GetDuration("search.latency")
	perCorpus := func(k string) time.Duration {
		if v.GetString(k) == "" {
			return latency
		}
		return v.GetDuration(k)
	}
	return &service.Config{
		DataDir:          v.GetString("data_dir"),
		CatalogDir:       v.GetString("catalog_dir"),
		PremiumUser:      v.GetBool("premium_user"),
		Keywords:         v.GetStringSlice("premium_keywords"),
		Latency:          latency,
		LibraryLatency:   perCorpus("search.library_latency"),
		TemplatesLatency: perCorpus("search.templates_latency"),
	}
}

// NewLogger builds the process logger at the configured level.
func NewLogger(v *viper.Viper) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}

func InitService(logger *logrus.Logger) (*service.Service, error) {
	svc, err := service.New(ServiceConfig(viper.GetViper()), logrus.NewEntry(logger))
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/palette/config.yaml)")
	cmd.PersistentFlags().String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().Bool("premium", false, "act as a premium user")

	cobra.CheckErr(viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("premium_user", cmd.PersistentFlags().Lookup("premium")))
}
