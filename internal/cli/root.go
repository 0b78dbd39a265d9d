package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	projectDir string
	outputJSON bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "droidsdk",
		Short: "Android SDK discovery, validation, and tool runner",
	}

	cmd.PersistentFlags().StringVar(&projectDir, "project", "", "Path to project directory")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")

	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newLocateCmd())
	cmd.AddCommand(newDescribeCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newToolsCmd())
	cmd.AddCommand(newExpandCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}
