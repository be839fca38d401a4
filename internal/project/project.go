package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/smartpaper/sp/internal/config"
)

// EnvRoot overrides every other way of locating the checkout when set.
const EnvRoot = "SP_PROJECT_ROOT"

// ErrNotFound indicates that no SmartPaper checkout could be discovered.
var ErrNotFound = errors.New("no SmartPaper checkout found; set project_root in the config or " + EnvRoot + " in the environment")

// Project encapsulates a SmartPaper checkout located on disk.
type Project struct {
	Root   string
	Config config.Config
}

// Resolve locates the checkout for the given configuration. Precedence:
// SP_PROJECT_ROOT, config.project_root, walking upward from start, the
// built-in default under the home directory. Resolution never stats the
// chosen root; the launcher's directory change reports missing roots.
func Resolve(cfg config.Config, start string) *Project {
	if env := os.Getenv(EnvRoot); env != "" {
		return &Project{Root: env, Config: cfg}
	}
	if cfg.ProjectRoot != "" {
		return &Project{Root: cfg.ProjectRoot, Config: cfg}
	}
	if root, err := Discover(start, cfg.Script); err == nil {
		return &Project{Root: root, Config: cfg}
	}
	return &Project{Root: DefaultRoot(), Config: cfg}
}

// Discover walks upward from start until it finds a directory holding script.
func Discover(start, script string) (string, error) {
	cur, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if isFile(filepath.Join(cur, script)) {
			return cur, nil
		}
		next := filepath.Dir(cur)
		if next == cur {
			break
		}
		cur = next
	}
	return "", ErrNotFound
}

// DefaultRoot is the fixed fallback checkout location.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "SmartPaper"
	}
	return filepath.Join(home, "SmartPaper")
}

// VenvPython reports the absolute path of the project-local interpreter.
func (p *Project) VenvPython() string {
	return filepath.Join(p.Root, p.Config.VenvPython)
}

// ScriptPath reports the target script path relative to the project root,
// in the ./script form the interpreter receives.
func (p *Project) ScriptPath() string {
	return "./" + filepath.ToSlash(p.Config.Script)
}

// StorageDir reports the absolute path of the analysis history directory.
func (p *Project) StorageDir() string {
	return filepath.Join(p.Root, p.Config.StorageDir)
}

// PromptsFile reports the prompt template catalog location.
func (p *Project) PromptsFile() string {
	return filepath.Join(p.Root, "config", "prompts.yaml")
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}
