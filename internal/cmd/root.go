package cmd

import (
	"strings"

	"github.com/Iron-Ham/clubhouse/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "clubhouse",
	Short: "Interactive football team roster manager",
	Long: `Clubhouse keeps an in-memory roster of football teams.

Run it without arguments to open the interactive menu: create professional
or amateur teams, add and remove players, record wins, losses and draws,
and list every team. Input is read as whitespace-separated words, so a
session can also be scripted:

  printf '1 Reds Smith Arena 3 0 Alice 7 5 9' | clubhouse`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/clubhouse/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CLUBHOUSE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., CLUBHOUSE_DISPLAY_THEME for display.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
