package cli

import (
	"io"
	"os"
	"time"

	"github.com/smartpaper/sp/internal/config"
	"github.com/smartpaper/sp/internal/project"
	"golang.org/x/term"
)

// envConfig overrides the configuration file location, mainly for tests.
const envConfig = "SP_CONFIG"

func configPath() (string, error) {
	if override := os.Getenv(envConfig); override != "" {
		return override, nil
	}
	return config.DefaultPath()
}

func loadConfig() (config.Config, error) {
	path, err := configPath()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

func loadProject() (*project.Project, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return project.Resolve(cfg, wd), nil
}

func currentTimeOverride() time.Time {
	if override := os.Getenv("SP_NOW"); override != "" {
		if t, err := time.Parse(time.RFC3339, override); err == nil {
			return t
		}
	}
	return time.Now()
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
