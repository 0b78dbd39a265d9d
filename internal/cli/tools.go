package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"droidsdk/internal/sdk"
)

func newToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect the SDK tool registry",
	}

	cmd.AddCommand(newToolsListCmd())
	return cmd
}

func newToolsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered SDK tools",
		RunE:  runToolsList,
	}
}

type toolListing struct {
	Name         string `json:"name"`
	UnixName     string `json:"unix_name"`
	WindowsName  string `json:"windows_name"`
	PlatformTool bool   `json:"platform_tool"`
}

func runToolsList(cmd *cobra.Command, _ []string) error {
	var listings []toolListing
	for _, name := range sdk.Known() {
		def, _ := sdk.Definition(name)
		listings = append(listings, toolListing{
			Name:         def.Name,
			UnixName:     def.UnixName,
			WindowsName:  def.WindowsName,
			PlatformTool: def.PlatformTool,
		})
	}

	if outputJSON {
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%-10s %-12s %-14s %s\n", "Tool", "Unix", "Windows", "Dir")
	for _, l := range listings {
		dir := "tools"
		if l.PlatformTool {
			dir = "platform-tools"
		}
		cmd.Printf("%-10s %-12s %-14s %s\n", l.Name, l.UnixName, l.WindowsName, dir)
	}
	return nil
}
