package sdk

import "sort"

// Tool identifies one executable shipped with the Android SDK.
type Tool struct {
	Name         string
	UnixName     string
	WindowsName  string
	PlatformTool bool
}

// Executable returns the filename for the tool on the target platform.
func (t Tool) Executable(isUnix bool) string {
	if isUnix {
		return t.UnixName
	}
	return t.WindowsName
}

var toolDefinitions = map[string]Tool{
	"adb": {
		Name:         "adb",
		UnixName:     "adb",
		WindowsName:  "adb.exe",
		PlatformTool: true,
	},
	"android": {
		Name:        "android",
		UnixName:    "android",
		WindowsName: "android.bat",
	},
	"emulator": {
		Name:        "emulator",
		UnixName:    "emulator",
		WindowsName: "emulator.exe",
	},
	"mksdcard": {
		Name:        "mksdcard",
		UnixName:    "mksdcard",
		WindowsName: "mksdcard.exe",
	},
}

// pathTools is the minimal subset that must be co-located in a single PATH
// directory for PATH-based root discovery to accept it.
var pathTools = []string{"adb", "emulator"}

// Known returns the registered tool names, sorted.
func Known() []string {
	names := make([]string, 0, len(toolDefinitions))
	for name := range toolDefinitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definition returns the tool definition for the provided name.
func Definition(name string) (Tool, bool) {
	def, ok := toolDefinitions[name]
	return def, ok
}

// AllExecutableVariants returns every platform-specific filename of every
// registered tool. Used by validation scans, which must accept whichever
// platform's variant is actually installed.
func AllExecutableVariants() []string {
	variants := make([]string, 0, 2*len(toolDefinitions))
	for _, name := range Known() {
		def := toolDefinitions[name]
		variants = append(variants, def.UnixName)
		if def.WindowsName != def.UnixName {
			variants = append(variants, def.WindowsName)
		}
	}
	return variants
}
