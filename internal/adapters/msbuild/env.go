package msbuild

import (
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
)

// allowListedEnvVars are the system variables the engine process inherits.
var allowListedEnvVars = map[string]struct{}{
	"HOME":         {},
	"USER":         {},
	"PATH":         {},
	"TERM":         {},
	"LANG":         {},
	"TMPDIR":       {},
	"TEMP":         {},
	"TMP":          {},
	"SystemRoot":   {},
	"USERPROFILE":  {},
	"APPDATA":      {},
	"LOCALAPPDATA": {},
	"ProgramData":  {},
	"ProgramFiles": {},
}

// allowListedEnvPrefixes admit whole families of toolchain variables.
var allowListedEnvPrefixes = []string{"DOTNET_", "MSBUILD", "MSBuild", "NUGET_"}

// engineEnv pins the engine to plain, English console output.
var engineEnv = map[string]string{
	"DOTNET_CLI_UI_LANGUAGE":      "en",
	"DOTNET_NOLOGO":               "1",
	"DOTNET_CLI_TELEMETRY_OPTOUT": "1",
	"MSBUILDTERMINALLOGGER":       "off",
	"MSBUILDDISABLENODEREUSE":     "1",
}

// resolveEnvironment merges, from low to high priority, the allow-listed system
// environment, the engine defaults and the configured overrides. A configured PATH is
// prepended to the system PATH. The result is sorted.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := filterSystemEnv(sysEnv)

	for k, v := range engineEnv {
		envMap[k] = v
	}

	for k, v := range overrides {
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

func filterSystemEnv(sysEnv []string) map[string]string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed || hasAllowedPrefix(k) {
			envMap[k] = v
		}
	}
	return envMap
}

func hasAllowedPrefix(key string) bool {
	for _, prefix := range allowListedEnvPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// lookPath searches for an executable in the directories named by the PATH in env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
