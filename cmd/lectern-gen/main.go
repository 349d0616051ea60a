// lectern-gen renders a lectern content tree into a static site.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	genCfg  config
)

// config controls a static build. Values come from flags, the config file,
// and LECTERN_-prefixed environment variables, in that order.
type config struct {
	ContentDir string `mapstructure:"contentDir"`
	StaticDir  string `mapstructure:"staticDir"`
	OutputDir  string `mapstructure:"outputDir"`
	BaseURL    string `mapstructure:"baseURL"`
	Workers    int    `mapstructure:"workers"`
}

var rootCmd = &cobra.Command{
	Use:   "lectern-gen",
	Short: "Static site generator for lectern lesson sites",
	Long: `lectern-gen takes the same content folder the lectern server uses,
renders every page with its sidebar, and writes a static HTML site.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./lectern.yaml)")
	rootCmd.AddCommand(buildCmd)
}

func initializeConfig() error {
	v := viper.New()

	v.SetDefault("contentDir", "content")
	v.SetDefault("staticDir", "static")
	v.SetDefault("outputDir", "public")
	v.SetDefault("baseURL", "")
	v.SetDefault("workers", runtime.NumCPU())

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("lectern")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("LECTERN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	}

	if err := v.Unmarshal(&genCfg); err != nil {
		return fmt.Errorf("unable to decode config: %w", err)
	}
	return nil
}
