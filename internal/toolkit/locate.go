package toolkit

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samcharles93/cupti/internal/logger"
)

// Toolkit root variables, in probe order.
const (
	EnvCUDAHome = "CUDA_HOME"
	EnvCUDAPath = "CUDA_PATH"
	EnvCUDARoot = "CUDA_ROOT"
)

const (
	// DefaultPrefix is where NVIDIA's installers put the toolkit.
	DefaultPrefix = "/usr/local/cuda"
	// LibraryName is the logical name handed to the linker.
	LibraryName = "cupti"
	// DefaultSourceDir is the locator's own source, relative to the module root.
	DefaultSourceDir = "internal/toolkit"
)

// RootVars lists the toolkit root variables in the order they are consulted.
func RootVars() []string {
	return []string{EnvCUDAHome, EnvCUDAPath, EnvCUDARoot}
}

// Source tags where a candidate directory came from.
type Source int

const (
	SourceEnv Source = iota
	SourceConfig
	SourceConvention
)

func (s Source) String() string {
	switch s {
	case SourceEnv:
		return "env"
	case SourceConfig:
		return "config"
	case SourceConvention:
		return "convention"
	default:
		return "unknown"
	}
}

// MarshalText lets JSON output carry the tag name.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Candidate is one library search directory.
type Candidate struct {
	Dir    string `json:"dir"`
	Source Source `json:"source"`
	// Origin is the variable name, config key or prefix that produced Dir.
	Origin string `json:"origin"`
}

// SearchPath is ordered: earlier entries are searched first.
type SearchPath []Candidate

// Dirs returns the directories in order.
func (p SearchPath) Dirs() []string {
	dirs := make([]string, len(p))
	for i, c := range p {
		dirs[i] = c.Dir
	}
	return dirs
}

// Plan is the resolved toolkit location for one invocation.
type Plan struct {
	Target  Target     `json:"target"`
	Search  SearchPath `json:"search"`
	Library string     `json:"library"`
	// Watch holds the environment variables whose change invalidates the plan.
	Watch []string `json:"watch"`
	// WatchFiles holds paths whose change invalidates the plan: the locator
	// source directory first, then the config file if one was read.
	WatchFiles []string `json:"watch_files"`
	// FromEnv reports whether any toolkit root variable was set.
	FromEnv bool `json:"from_env"`
}

// Locator derives search paths. The zero value reads the process
// environment and uses DefaultPrefix.
type Locator struct {
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
	// Prefix replaces DefaultPrefix when set.
	Prefix string
	// ExtraRoots are searched after the environment roots and before Prefix.
	ExtraRoots []string
	// SourceDir replaces DefaultSourceDir in the watch list when set.
	SourceDir string
	// ConfigFile is added to the watch list when set.
	ConfigFile string
	Log        logger.Logger
}

func (l *Locator) getenv(key string) string {
	if l.Getenv != nil {
		return l.Getenv(key)
	}
	return os.Getenv(key)
}

func (l *Locator) log() logger.Logger {
	if l.Log != nil {
		return l.Log
	}
	return logger.Discard()
}

func (l *Locator) prefix() string {
	if p := strings.TrimSpace(l.Prefix); p != "" {
		return p
	}
	return DefaultPrefix
}

func (l *Locator) sourceDir() string {
	if d := strings.TrimSpace(l.SourceDir); d != "" {
		return d
	}
	return DefaultSourceDir
}

// Locate builds the plan for t. It does not check that any candidate exists.
func (l *Locator) Locate(t Target) Plan {
	plan := Plan{
		Target:  t,
		Library: LibraryName,
		Watch:   RootVars(),
	}
	plan.WatchFiles = []string{l.sourceDir()}
	if l.ConfigFile != "" {
		plan.WatchFiles = append(plan.WatchFiles, l.ConfigFile)
	}

	for _, name := range RootVars() {
		root := strings.TrimSpace(l.getenv(name))
		if root == "" {
			continue
		}
		plan.FromEnv = true
		plan.Search = appendRoot(plan.Search, t, root, SourceEnv, name)
	}
	for _, root := range l.ExtraRoots {
		if root = strings.TrimSpace(root); root != "" {
			plan.Search = appendRoot(plan.Search, t, root, SourceConfig, "extra_roots")
		}
	}
	prefix := l.prefix()
	plan.Search = appendRoot(plan.Search, t, prefix, SourceConvention, prefix)

	log := l.log()
	if !plan.FromEnv {
		log.Debug("no toolkit root variable set, using conventional prefix", "prefix", prefix)
	}
	for _, c := range plan.Search {
		log.Debug("search candidate", "dir", c.Dir, "source", c.Source.String(), "origin", c.Origin)
	}
	return plan
}

// appendRoot adds the candidate shapes for one toolkit root.
func appendRoot(dst SearchPath, t Target, root string, src Source, origin string) SearchPath {
	dirs := []string{
		filepath.Join(root, filepath.FromSlash(t.TargetsLibDir())),
		filepath.Join(root, "lib64"),
		filepath.Join(root, "lib"),
	}
	if tuple := t.MultiarchTuple(); tuple != "" {
		dirs = append(dirs, filepath.Join(root, "lib", tuple))
	}
	for _, d := range dirs {
		dst = append(dst, Candidate{Dir: d, Source: src, Origin: origin})
	}
	return dst
}
