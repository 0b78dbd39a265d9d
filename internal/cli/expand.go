package cli

import (
	"github.com/spf13/cobra"

	"droidsdk/internal/buildenv"
)

func newExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand <token>",
		Short: "Expand ${name} tokens against environment and job variables",
		Args:  cobra.ExactArgs(1),
		RunE:  runExpand,
	}
}

func runExpand(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadProject()
	if err != nil {
		return err
	}

	result, ok := buildenv.Expand(buildenv.OSEnv(), cfg.Job.Variables, args[0])
	if !ok {
		cmd.Println("(no value)")
		return nil
	}
	cmd.Println(result)
	return nil
}
