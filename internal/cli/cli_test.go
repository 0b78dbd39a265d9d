package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("command %v failed: %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func TestToolsListJSON(t *testing.T) {
	out := runCommand(t, "tools", "list", "--json", "--project", t.TempDir())

	var listings []toolListing
	if err := json.Unmarshal([]byte(out), &listings); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(listings) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(listings))
	}

	byName := map[string]toolListing{}
	for _, l := range listings {
		byName[l.Name] = l
	}
	if !byName["adb"].PlatformTool {
		t.Fatal("adb must be a platform-tool")
	}
	if byName["android"].WindowsName != "android.bat" {
		t.Fatalf("unexpected windows name: %q", byName["android"].WindowsName)
	}
}

func TestExpandCommandUsesJobVariables(t *testing.T) {
	project := t.TempDir()
	contents := "job:\n  variables:\n    DEVICE: pixel_7\n"
	if err := os.WriteFile(filepath.Join(project, "droidsdk.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	out := runCommand(t, "expand", "${DEVICE}-test", "--project", project)
	if got := strings.TrimSpace(out); got != "pixel_7-test" {
		t.Fatalf("unexpected expansion: %q", got)
	}
}

func TestExpandCommandBlankToken(t *testing.T) {
	out := runCommand(t, "expand", "   ", "--project", t.TempDir())
	if got := strings.TrimSpace(out); got != "(no value)" {
		t.Fatalf("expected no value marker, got %q", got)
	}
}

func TestLocateCommandConfiguredHome(t *testing.T) {
	project := t.TempDir()
	sdkRoot := makeFakeSDK(t)
	contents := "sdk:\n  home: " + sdkRoot + "\n"
	if err := os.WriteFile(filepath.Join(project, "droidsdk.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	out := runCommand(t, "locate", "--json", "--project", project)

	var result map[string]string
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if result["home"] != sdkRoot {
		t.Fatalf("expected home %s, got %q", sdkRoot, result["home"])
	}
	if result["source"] != "configured" {
		t.Fatalf("expected configured source, got %q", result["source"])
	}
}

func makeFakeSDK(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, sub := range []string{"tools", "platforms/android-34", "platform-tools"} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for dir, names := range map[string][]string{
		"platform-tools": {"adb"},
		"tools":          {"android", "emulator", "mksdcard"},
	} {
		for _, name := range names {
			path := filepath.Join(root, dir, name)
			if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
				t.Fatal(err)
			}
		}
	}
	return root
}
