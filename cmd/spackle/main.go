// cmd/spackle/main.go

package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vuul/spackle-ssh/internal/config"
)

var (
	flagStorePath string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "spackle",
	Short: "SSH/Telnet session launcher with saved connection profiles",
	Long: `Spackle stores named SSH/Telnet connection profiles in a legacy
properties file and launches sessions inside a platform terminal
window (Terminal.app on macOS, xterm elsewhere).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	},
}

// store opens the profile store honoring the --store override.
func store() *config.Store {
	return config.NewStore(flagStorePath)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStorePath, "store", "", "Path to the profile store file (defaults to ~/"+config.DefaultStoreFileName+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
