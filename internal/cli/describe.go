package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"droidsdk/internal/agent"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Build and print the SDK descriptor",
		RunE:  runDescribe,
	}
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	_, cfg, err := loadProject()
	if err != nil {
		return err
	}

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

	if outputJSON {
		data, err := json.MarshalIndent(desc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	root := desc.Root
	if !desc.HasKnownRoot() {
		root = "(unknown; relying on PATH)"
	}
	cmd.Printf("Root:           %s\n", root)
	cmd.Printf("Platform-tools: %t\n", desc.PlatformTools)
	return nil
}
