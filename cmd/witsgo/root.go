package main

import (
	"os"

	"github.com/rigstream/witsgo/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "witsgo",
	Short: "WITSML store client",
}

func init() {
	cobra.OnInitialize(initConfig)

	// Flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default \"witsgo.yml\")")
	rootCmd.PersistentFlags().String("url", "", "Store API endpoint url")
	rootCmd.PersistentFlags().String("username", "", "Store username")
	rootCmd.PersistentFlags().String("password", "", "Store password")
	rootCmd.PersistentFlags().Bool("insecure", false, "Skip TLS certificate verification")
	rootCmd.PersistentFlags().String("cacert", "", "Path to a pem CA bundle")
	_ = viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
	_ = viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))
	_ = viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))
	_ = viper.BindPFlag("insecure", rootCmd.PersistentFlags().Lookup("insecure"))
	_ = viper.BindPFlag("cacert", rootCmd.PersistentFlags().Lookup("cacert"))

	// Add Subcommands
	rootCmd.AddCommand(getCmd())
	rootCmd.AddCommand(capsCmd())
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(basemsgCmd())
	rootCmd.AddCommand(mirrorCmd())

	// Set default output
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("witsgo")
		viper.SetConfigType("yml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("WITSGO")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func newStoreClient() (*store.Client, error) {
	return store.NewClient(store.Config{
		URL:      viper.GetString("url"),
		Username: viper.GetString("username"),
		Password: viper.GetString("password"),
		Insecure: viper.GetBool("insecure"),
		RootCAs:  viper.GetString("cacert"),
	})
}
