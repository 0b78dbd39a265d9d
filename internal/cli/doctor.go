package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"droidsdk/internal/agent"
	"droidsdk/internal/config"
	"droidsdk/internal/paths"
	"droidsdk/internal/sdk"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check SDK configuration health",
		RunE:  runDoctor,
	}
}

type healthCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Summary string `json:"summary"`
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	pp, cfg, err := loadProject()
	if err != nil {
		return err
	}
	exists, err := paths.DirExists(pp.Root)
	if err != nil {
		return fmt.Errorf("stat project dir: %w", err)
	}
	if !exists {
		return fmt.Errorf("project directory does not exist: %s", pp.Root)
	}

	target := agent.Local{}
	hostEnv, snap := captureEnv(cfg)
	home := expandedHome(cfg, hostEnv)

	var checks []healthCheck
	checks = append(checks, checkConfigured(cfg, home))
	checks = append(checks, checkEnvCandidates(snap))

	resolved, source := sdk.Locate(snap, home)
	desc, err := target.Describe(cmd.Context(), agent.DescribeRequest{ConfiguredHome: resolved})
	if err != nil {
		checks = append(checks, healthCheck{Name: "SDK", Status: "error", Summary: err.Error()})
	} else {
		checks = append(checks, checkDescriptor(desc, source))
		if desc != nil {
			checks = append(checks, checkTools(*desc, target.IsUnix()))
		}
	}

	return writeDoctorResult(cmd, pp.ConfigFile, checks)
}

func checkConfigured(cfg config.Config, home string) healthCheck {
	if strings.TrimSpace(home) == "" {
		return healthCheck{Name: "Configured", Status: "ok", Summary: "no home configured; discovery will be used"}
	}

	result := sdk.Validate(home, cfg.SDK.Lenient, sdk.AllowAll)
	summary := home
	if result.Message != "" {
		summary = fmt.Sprintf("%s: %s", home, result.Message)
	}
	return healthCheck{Name: "Configured", Status: string(result.Level), Summary: summary}
}

func checkEnvCandidates(snap map[string]string) healthCheck {
	var set []string
	for _, key := range sdk.HomeEnvVars() {
		if strings.TrimSpace(snap[key]) != "" {
			set = append(set, key)
		}
	}
	if len(set) == 0 {
		return healthCheck{Name: "Environment", Status: "warning", Summary: "no SDK environment variables set"}
	}
	return healthCheck{Name: "Environment", Status: "ok", Summary: strings.Join(set, ", ")}
}

func checkDescriptor(desc *sdk.Descriptor, source sdk.HomeSource) healthCheck {
	if desc == nil {
		return healthCheck{Name: "SDK", Status: "error", Summary: "no usable SDK found"}
	}

	summary := fmt.Sprintf("%s (via %s)", desc.Root, source)
	if !desc.HasKnownRoot() {
		summary = "root unknown; relying on PATH"
	}
	if desc.PlatformTools {
		summary += ", platform-tools present"
	}
	return healthCheck{Name: "SDK", Status: "ok", Summary: summary}
}

func checkTools(desc sdk.Descriptor, isUnix bool) healthCheck {
	var present, total int
	var missing []string
	for _, name := range sdk.Known() {
		def, _ := sdk.Definition(name)
		total++
		cmd := sdk.ToolCommand(desc, isUnix, def, "")
		if _, err := os.Stat(cmd[0]); err == nil {
			present++
		} else {
			missing = append(missing, name)
		}
	}

	if present == total {
		return healthCheck{Name: "Tools", Status: "ok", Summary: fmt.Sprintf("%d of %d tools present", present, total)}
	}
	return healthCheck{
		Name:    "Tools",
		Status:  "error",
		Summary: fmt.Sprintf("%d of %d tools present; missing: %s", present, total, strings.Join(missing, ", ")),
	}
}

func writeDoctorResult(cmd *cobra.Command, configFile string, checks []healthCheck) error {
	if outputJSON {
		data, err := json.MarshalIndent(checks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	bold := lipgloss.NewStyle().Bold(true).Inline(true)
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Inline(true)
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Inline(true)
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Inline(true)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bold.Render("SDK HEALTH:")+" "+configFile)

	for _, c := range checks {
		var statusStr string
		switch c.Status {
		case "ok":
			statusStr = green.Render("OK")
		case "warning":
			statusStr = yellow.Render("WARN")
		case "error":
			statusStr = red.Render("ERROR")
		}
		fmt.Fprintf(out, "  %-12s %s    %s\n", c.Name+":", statusStr, c.Summary)
	}

	return nil
}
