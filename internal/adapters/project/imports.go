package project

import "strings"

// isAbsoluteImport reports whether an import path is already anchored and must be left alone.
// It accepts drive paths (C:\, C:/), POSIX and UNC roots, and paths rooted at an MSBuild
// property such as $(MSBuildExtensionsPath).
func isAbsoluteImport(p string) bool {
	switch {
	case strings.Contains(p, `:\`), strings.Contains(p, ":/"):
		return true
	case strings.HasPrefix(p, "/"), strings.HasPrefix(p, `\\`):
		return true
	case strings.HasPrefix(p, "$("):
		return true
	default:
		return false
	}
}

// joinImport anchors rel at dir using dir's separator style, so a Windows directory
// keeps backslashes and a POSIX directory gets forward slashes.
func joinImport(dir, rel string) string {
	if dir == "" {
		return rel
	}

	sep, other := "/", `\`
	if strings.Contains(dir, `\`) && !strings.Contains(dir, "/") {
		sep, other = `\`, "/"
	}

	rel = strings.TrimPrefix(strings.ReplaceAll(rel, other, sep), "."+sep)
	return strings.TrimRight(dir, `\/`) + sep + rel
}
