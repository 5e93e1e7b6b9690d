package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/dropmenu/internal/logger"
)

type rootFlags struct {
	verbose bool
	logFile string
}

// logger returns a file logger when --log-file is set. Interactive commands own the
// terminal, so without a file nothing is logged.
func (f *rootFlags) logger() (*logger.Logger, error) {
	if f.logFile == "" {
		return logger.Nop(), nil
	}
	level := "info"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true, File: f.logFile})
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "dropmenu",
		Short:         "Dropdown menu bars for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newGitCmd(flags))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
