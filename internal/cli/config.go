package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"droidsdk/internal/config"
	"droidsdk/internal/paths"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create project configuration",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration in YAML",
		RunE:  runConfigShow,
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default droidsdk.yaml",
		RunE:  runConfigInit,
	}
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	_, cfg, err := loadProject()
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	cmd.Print(string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return err
	}

	if _, err := os.Stat(pp.ConfigFile); err == nil {
		return fmt.Errorf("config already exists: %s", pp.ConfigFile)
	}

	cfg := config.Default()
	cfg.ApplyDefaults()
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(pp.ConfigFile, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	cmd.Printf("wrote %s\n", pp.ConfigFile)
	return nil
}
