package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"droidsdk/internal/agent"
	"droidsdk/internal/logx"
	"droidsdk/internal/sdk"
)

var (
	runArgs string
	runDir  string
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <tool>",
		Short: "Run an SDK tool, streaming its output",
		Long: "Runs a registered SDK tool to completion, streaming stdout and stderr.\n" +
			"The process exits with the tool's own exit code.",
		Args: cobra.ExactArgs(1),
		RunE: runRun,
	}

	cmd.Flags().StringVar(&runArgs, "args", "", "Extra arguments passed to the tool")
	cmd.Flags().StringVar(&runDir, "dir", "", "Working directory for the tool")

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(args[0])
	tool, ok := sdk.Definition(name)
	if !ok {
		return fmt.Errorf("unknown tool: %s", name)
	}

	pp, cfg, err := loadProject()
	if err != nil {
		return err
	}

	if err := pp.EnsureLogsDir(); err != nil {
		return err
	}
	logger, closer, err := logx.New(pp.LogsDir)
	if err != nil {
		return err
	}
	defer closer.Close()

	target := agent.Local{}
	hostEnv, snap := captureEnv(cfg)

	home, err := target.Locate(cmd.Context(), agent.LocateRequest{
		ConfiguredHome: expandedHome(cfg, hostEnv),
		Env:            snap,
	})
	if err != nil {
		return err
	}

	desc, err := target.Describe(cmd.Context(), agent.DescribeRequest{ConfiguredHome: home})
	if err != nil {
		return err
	}
	if desc == nil {
		return fmt.Errorf("no usable Android SDK found")
	}

	extra := joinArgs(cfg.DefaultArgs(name), runArgs)
	logger.Info().
		Str("tool", name).
		Str("root", desc.Root).
		Str("args", extra).
		Msg("running tool")

	code, err := agent.Run(cmd.Context(), target, cmd.OutOrStdout(), cmd.ErrOrStderr(), *desc, tool, extra, runDir)
	if err != nil {
		logger.Error().Err(err).Str("tool", name).Msg("tool execution failed")
		return err
	}

	logger.Info().Str("tool", name).Int("exit_code", code).Msg("tool finished")
	if code != 0 {
		closer.Close()
		os.Exit(code)
	}
	return nil
}

func joinArgs(defaults, extra string) string {
	defaults = strings.TrimSpace(defaults)
	extra = strings.TrimSpace(extra)
	switch {
	case defaults == "":
		return extra
	case extra == "":
		return defaults
	default:
		return defaults + " " + extra
	}
}
