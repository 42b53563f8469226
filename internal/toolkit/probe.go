package toolkit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EnvLibDir names a directory that is checked before anything else by Probe.
const EnvLibDir = "CUPTI_LIB_DIR"

// ErrLibraryNotFound is returned by Probe when no candidate holds the library.
var ErrLibraryNotFound = errors.New("libcupti not found")

// Match is a library file found on disk.
type Match struct {
	Dir    string
	Path   string
	Static bool
	Origin string
}

// Probe walks CUPTI_LIB_DIR, the plan candidates and the system library
// directories, and returns the first one holding the library. Shared objects
// win over static archives within a directory.
func (l *Locator) Probe(t Target) (Match, error) {
	type probeDir struct{ dir, origin string }
	var dirs []probeDir
	if d := strings.TrimSpace(l.getenv(EnvLibDir)); d != "" {
		dirs = append(dirs, probeDir{d, EnvLibDir})
	}
	for _, c := range l.Locate(t).Search {
		dirs = append(dirs, probeDir{c.Dir, c.Origin})
	}
	for _, d := range systemLibDirs(t) {
		dirs = append(dirs, probeDir{d, "system"})
	}

	log := l.log()
	for _, d := range dirs {
		if path, static, ok := findLibrary(d.dir, LibraryName, t.OS); ok {
			log.Debug("found library", "path", path, "origin", d.origin)
			return Match{Dir: d.dir, Path: path, Static: static, Origin: d.origin}, nil
		}
	}
	return Match{}, fmt.Errorf("%w in %d candidate directories", ErrLibraryNotFound, len(dirs))
}

func systemLibDirs(t Target) []string {
	var dirs []string
	if tuple := t.MultiarchTuple(); tuple != "" {
		dirs = append(dirs, filepath.Join("/usr/lib", tuple))
	}
	return append(dirs, "/usr/lib64", "/usr/lib")
}

// sharedPatterns lists the file names tried for a shared library, exact names
// first. Versioned names are globbed and the lexically last one wins.
func sharedPatterns(name, goos string) (exact, glob string) {
	if goos == "darwin" {
		return "lib" + name + ".dylib", "lib" + name + ".*.dylib"
	}
	return "lib" + name + ".so", "lib" + name + ".so.*"
}

func findLibrary(dir, name, goos string) (path string, static, ok bool) {
	exact, pattern := sharedPatterns(name, goos)
	if p := filepath.Join(dir, exact); isFile(p) {
		return p, false, true
	}
	if matches, _ := filepath.Glob(filepath.Join(dir, pattern)); len(matches) > 0 {
		sort.Strings(matches)
		for i := len(matches) - 1; i >= 0; i-- {
			if isFile(matches[i]) {
				return matches[i], false, true
			}
		}
	}
	if p := filepath.Join(dir, "lib"+name+".a"); isFile(p) {
		return p, true, true
	}
	return "", false, false
}

func isFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
