package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds the config directory and resolves user supplied file paths.
type PathResolver struct {
	appName       string
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver determines the executable location and the platform config dir.
func NewPathResolver(appName string) (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		appName:       appName,
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     platformConfigDir(homeDir, appName),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

func platformConfigDir(homeDir, appName string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, appName)
		}
		return filepath.Join(homeDir, ".config", appName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", appName)
	default:
		return filepath.Join(homeDir, ".config", appName)
	}
}

// GetConfigPath returns a writable location for filename, falling back from the
// config dir to ~/.<app>, the temp dir and finally the executable dir.
func (pr *PathResolver) GetConfigPath(filename string) string {
	candidates := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, "."+pr.appName),
		filepath.Join(os.TempDir(), pr.appName),
		pr.executableDir,
	}
	for i, dir := range candidates {
		if IsWritableDir(dir) {
			path := filepath.Join(dir, filename)
			if i > 0 {
				log.Warnf("Using fallback config location: %s", path)
			}
			return path
		}
	}
	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}

// ResolveFile finds a user supplied file: absolute paths as given, relative paths
// against the working directory, the executable dir and the config dir in order.
func (pr *PathResolver) ResolveFile(path string) (string, error) {
	if filepath.IsAbs(path) {
		if FileExists(path) {
			return path, nil
		}
		return "", os.ErrNotExist
	}

	var searchDirs []string
	if cwd, err := os.Getwd(); err == nil {
		searchDirs = append(searchDirs, cwd)
	}
	searchDirs = append(searchDirs, pr.executableDir, pr.configDir)

	for _, dir := range searchDirs {
		candidate := filepath.Join(dir, path)
		if FileExists(candidate) {
			return candidate, nil
		}
		log.Debugf("File candidate not found: %s", candidate)
	}
	return "", os.ErrNotExist
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
