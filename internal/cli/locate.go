package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"droidsdk/internal/sdk"
)

func newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Resolve the SDK home via the fallback chain",
		RunE:  runLocate,
	}
}

func runLocate(cmd *cobra.Command, _ []string) error {
	_, cfg, err := loadProject()
	if err != nil {
		return err
	}

	hostEnv, snap := captureEnv(cfg)
	home, source := sdk.Locate(snap, expandedHome(cfg, hostEnv))

	if outputJSON {
		data, err := json.MarshalIndent(map[string]string{
			"home":   home,
			"source": string(source),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if strings.TrimSpace(home) == "" {
		cmd.Println("no SDK home resolved")
		return nil
	}
	cmd.Printf("%s (via %s)\n", home, source)
	return nil
}
