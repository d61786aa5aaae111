// Package cmd is for command line interactions with the rosalind application
package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jjtimmons/rosalind/config"
)

var (
	// cfgFile is the path to a settings file passed with --config
	cfgFile string

	// conf is the settings for the running command
	conf *config.Config

	// logger writes to stderr (without a timestamp)
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "rosalind"})
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "rosalind",
	Short: `Analyze DNA, RNA and protein sequences.
Count and transform sequences, find motifs and consensus sequences,
build overlap graphs, and solve rabbit population problems`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func init() {
	config.SetDefaults(viper.GetViper())
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is $HOME/.rosalind.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug messages")
	rootCmd.PersistentFlags().String("table-style", "rounded", "table border style: rounded, normal or ascii")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("table.style", rootCmd.PersistentFlags().Lookup("table-style"))
}

// initConfig reads in the settings file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".rosalind")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("rosalind")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			logger.Warn("failed to read settings file", "err", err)
		}
	}
}

// loadConfig unmarshals the settings for a command and sets the log level.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if conf, err = config.New(viper.GetViper()); err != nil {
		return err
	}

	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		logger.Warn("unknown log-level, defaulting to info", "provided", conf.LogLevel)
		level = log.InfoLevel
	}
	if viper.GetBool("verbose") {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("loaded settings", "path", used)
	}
	return nil
}
