package sdk

import (
	"reflect"
	"testing"
)

func TestToolCommandPlatformTool(t *testing.T) {
	adb, _ := Definition("adb")
	desc := Descriptor{Root: "/sdk", PlatformTools: true}

	cmd := ToolCommand(desc, true, adb, "")
	if len(cmd) != 1 || cmd[0] != "/sdk/platform-tools/adb" {
		t.Fatalf("unexpected command: %v", cmd)
	}
}

func TestToolCommandPlatformToolWithoutPlatformTools(t *testing.T) {
	adb, _ := Definition("adb")
	desc := Descriptor{Root: "/sdk", PlatformTools: false}

	cmd := ToolCommand(desc, true, adb, "")
	if cmd[0] != "/sdk/tools/adb" {
		t.Fatalf("unexpected executable: %s", cmd[0])
	}
}

func TestToolCommandNonPlatformToolIgnoresPlatformTools(t *testing.T) {
	emulator, _ := Definition("emulator")
	desc := Descriptor{Root: "/sdk", PlatformTools: true}

	cmd := ToolCommand(desc, true, emulator, "")
	if cmd[0] != "/sdk/tools/emulator" {
		t.Fatalf("unexpected executable: %s", cmd[0])
	}
}

func TestToolCommandWindowsTarget(t *testing.T) {
	adb, _ := Definition("adb")
	desc := Descriptor{Root: "/sdk", PlatformTools: true}

	cmd := ToolCommand(desc, false, adb, "")
	if cmd[0] != "/sdk/platform-tools/adb.exe" {
		t.Fatalf("unexpected executable: %s", cmd[0])
	}
}

func TestToolCommandUnknownRoot(t *testing.T) {
	adb, _ := Definition("adb")

	cmd := ToolCommand(Descriptor{}, true, adb, "devices -l")
	want := Command{"adb", "devices", "-l"}
	if !reflect.DeepEqual(cmd, want) {
		t.Fatalf("expected %v, got %v", want, cmd)
	}
}

func TestToolCommandEmptyArgs(t *testing.T) {
	emulator, _ := Definition("emulator")
	desc := Descriptor{Root: "/sdk"}

	cmd := ToolCommand(desc, true, emulator, "   ")
	if len(cmd) != 1 {
		t.Fatalf("whitespace args must yield executable-only command, got %v", cmd)
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"-no-window -wipe-data", []string{"-no-window", "-wipe-data"}},
		{`-prop "name with spaces"`, []string{"-prop", "name with spaces"}},
		{`-prop 'single quoted'`, []string{"-prop", "single quoted"}},
		{`a\ b c`, []string{"a b", "c"}},
		{`""`, []string{""}},
		{`mixed"quo ted"tail`, []string{"mixedquo tedtail"}},
	}

	for _, tc := range cases {
		got := Tokenize(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Tokenize(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}
