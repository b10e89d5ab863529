package infra

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	AppName = "ai-chatbot"

	// DefaultKnowledgeFile is the knowledge document filename inside the
	// workspace directory.
	DefaultKnowledgeFile = "knowledge_base.json"
)

// GetWorkspaceDir returns the root directory for runtime data. A local
// "_workspace" directory takes priority (portable/dev mode); otherwise the
// OS-standard user config location is used.
func GetWorkspaceDir() string {
	localDir := "_workspace"
	if _, err := os.Stat(localDir); err == nil {
		return localDir
	}

	configRoot, err := os.UserConfigDir()
	if err != nil {
		return localDir
	}
	return filepath.Join(configRoot, AppName)
}

// EnsureDir creates the directory if it doesn't exist with safe permissions.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// CreateLockFile guards the knowledge file against concurrent processes:
// the whole design assumes a single writer, so a second instance must fail
// fast instead of interleaving saves. It returns a release function.
func CreateLockFile(workDir string) (func(), error) {
	lockPath := filepath.Join(workDir, "instance.lock")

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("another instance is already running (lock file exists: %s)", lockPath)
		}
		return nil, err
	}

	fmt.Fprintf(f, "%d", os.Getpid())
	f.Close()

	return func() { os.Remove(lockPath) }, nil
}

// ResolveConfigPath finds config.yaml, preferring the working directory over
// the OS config dir. The returned path may not exist; LoadConfig falls back
// to defaults in that case.
func ResolveConfigPath() string {
	defaultPath := filepath.Join("configs", "config.yaml")
	if _, err := os.Stat(defaultPath); err == nil {
		return defaultPath
	}

	if configRoot, err := os.UserConfigDir(); err == nil {
		osPath := filepath.Join(configRoot, AppName, "config.yaml")
		if _, err := os.Stat(osPath); err == nil {
			return osPath
		}
	}

	return defaultPath
}
