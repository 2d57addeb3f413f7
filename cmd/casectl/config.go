package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "casectl"
	configFileType = "yaml"

	cfgKeyDatabaseURL        = "database_url"
	cfgKeyAttachmentRequired = "attachment_required"
	cfgKeyVerbose            = "verbose"

	defaultDatabaseURL = "sqlite:///casebook.db"
)

// loadConfig resolves settings as flag > environment > casectl.yaml > default.
// A missing casectl.yaml is only an error when it was named explicitly.
func loadConfig(root *cobra.Command, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDatabaseURL, defaultDatabaseURL)
	v.SetDefault(cfgKeyAttachmentRequired, false)

	for key, env := range map[string]string{
		cfgKeyDatabaseURL:        "DATABASE_URL",
		cfgKeyAttachmentRequired: "ATTACHMENT_REQUIRED",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	for key, flag := range map[string]string{
		cfgKeyDatabaseURL:        "database-url",
		cfgKeyAttachmentRequired: "attachment-required",
		cfgKeyVerbose:            "verbose",
	} {
		if err := v.BindPFlag(key, root.PersistentFlags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag --%s: %w", flag, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
