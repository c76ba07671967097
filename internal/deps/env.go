package deps

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// prefixDirs lists, per variable, the directories of a GTK+ 3 install under prefix.
func prefixDirs(prefix string) map[string][]string {
	prefix = filepath.Clean(prefix)
	libs := []string{"lib", "lib64", filepath.Join("lib", "x86_64-linux-gnu")}

	var pkgConfig, ldLibrary []string
	for _, lib := range libs {
		pkgConfig = append(pkgConfig, filepath.Join(prefix, lib, "pkgconfig"))
		ldLibrary = append(ldLibrary, filepath.Join(prefix, lib))
	}
	pkgConfig = append(pkgConfig, filepath.Join(prefix, "share", "pkgconfig"))

	return map[string][]string{
		"PKG_CONFIG_PATH": pkgConfig,
		"LD_LIBRARY_PATH": ldLibrary,
	}
}

// CommandEnvWithPrefix returns an environment suitable for exec.Cmd.Env with the
// prefix's pkg-config and library directories searched first.
func CommandEnvWithPrefix(prefix string) []string {
	env := os.Environ()
	if strings.TrimSpace(prefix) == "" {
		return env
	}

	for name, dirs := range prefixDirs(prefix) {
		idx := slices.IndexFunc(env, func(kv string) bool { return strings.HasPrefix(kv, name+"=") })
		if idx < 0 {
			env = append(env, name+"="+joinPathList(dirs, ""))
			continue
		}
		env[idx] = name + "=" + joinPathList(dirs, strings.TrimPrefix(env[idx], name+"="))
	}
	return env
}

// joinPathList puts dirs in front of the colon-separated existing list, dropping
// blanks and duplicates.
func joinPathList(dirs []string, existing string) string {
	out := make([]string, 0, len(dirs)+4)
	for _, p := range append(append([]string(nil), dirs...), filepath.SplitList(existing)...) {
		p = strings.TrimSpace(p)
		if p != "" && !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return strings.Join(out, string(filepath.ListSeparator))
}
