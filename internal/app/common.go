package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/confprune/confprune/internal/classify"
	"github.com/confprune/confprune/internal/config"
	"github.com/confprune/confprune/internal/inventory"
	"github.com/confprune/confprune/internal/keep"
	"github.com/confprune/confprune/internal/metacache"
)

// session bundles the per-run state every command needs: the home
// directory, config-dir derived paths, the alias table, the ignore
// list, and the kept list. No ambient globals; commands build one and
// pass it down.
type session struct {
	home    string
	cfgDir  string
	aliases map[string]string
	ignore  *config.IgnoreList
	kept    *keep.List
}

// newSession loads configuration and the kept list. Config-dir load
// errors are fatal only when the files exist but cannot be read.
func newSession() (*session, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	cfgDir, err := config.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	aliases, err := config.LoadAliases(cfgDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load aliases: %w", err)
	}

	ignore, err := config.LoadIgnoreList(cfgDir, home)
	if err != nil {
		return nil, fmt.Errorf("failed to load ignore list: %w", err)
	}

	kept, err := keep.Load(filepath.Join(cfgDir, "kept.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to load kept list: %w", err)
	}

	return &session{
		home:    home,
		cfgDir:  cfgDir,
		aliases: aliases,
		ignore:  ignore,
		kept:    kept,
	}, nil
}

// engine collects all source inventories and builds the classification
// engine. Collection shells out to pacman and flatpak; missing tools
// just contribute empty inventories.
func (s *session) engine() *classify.Engine {
	inv := inventory.Collect(s.home)
	return classify.NewEngine(inv, s.aliases, s.kept.Paths())
}

// cachePath returns the metadata cache file location.
func (s *session) cachePath() string {
	return filepath.Join(s.cfgDir, "describe-cache.json")
}

// loadCache loads the metadata cache; missing or corrupt files yield an
// empty cache.
func (s *session) loadCache() *metacache.Cache {
	return metacache.Load(s.cachePath())
}

// getDBPath returns the history database path, using the --db flag
// value or the config-dir default.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	cfgDir, err := config.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(cfgDir, "history.db"), nil
}

// resolveDirArg turns a command argument into an absolute, cleaned
// directory path and verifies it exists.
func resolveDirArg(arg string) (string, error) {
	path, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", arg, err)
	}
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot access %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", path)
	}
	return path, nil
}
