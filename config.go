package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// settings are the options that can come from flags, CPATH_* env vars or the config file.
type settings struct {
	Dialect string
	Format  string
	Key     string
	Digest  bool
	Quiet   bool
	Log     bool
}

var validFormats = []string{"text", "tree", "table", "json", "yaml"}

// configKeys are the flags that viper resolves; the rest only make sense on the command line.
var configKeys = map[string]bool{
	"dialect": true,
	"format":  true,
	"key":     true,
	"digest":  true,
	"quiet":   true,
	"log":     true,
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitFatal)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".cpath")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("cpath")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Can't read config:", err)
			os.Exit(ExitUsage)
		}
	}
}

func bindFlags(flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(flag *pflag.Flag) {
		if !configKeys[flag.Name] || bindErr != nil {
			return
		}
		bindErr = viper.BindPFlag(flag.Name, flag)
	})
	return bindErr
}

func loadSettings(v *viper.Viper) (settings, error) {
	cfg := settings{
		Dialect: v.GetString("dialect"),
		Format:  v.GetString("format"),
		Key:     v.GetString("key"),
		Digest:  v.GetBool("digest"),
		Quiet:   v.GetBool("quiet"),
		Log:     v.GetBool("log"),
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	for _, format := range validFormats {
		if cfg.Format == format {
			return cfg, nil
		}
	}
	return cfg, fmt.Errorf("invalid format: %s. Valid formats are: %v", cfg.Format, validFormats)
}
