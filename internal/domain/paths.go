package domain

import "path/filepath"

// ConfigFileName is the name of the repoctl configuration file.
const ConfigFileName = "config.toml"

// CtlDir returns the repoctl state directory inside .git.
func CtlDir(gitDir string) string {
	return filepath.Join(gitDir, "repoctl")
}

// GlobalCtlDir returns the global repoctl config directory under the
// user's config home (e.g. ~/.config/repoctl).
func GlobalCtlDir(configHome string) string {
	return filepath.Join(configHome, "repoctl")
}

// LogPath returns the path of the log file inside the ctl directory.
func LogPath(ctlDir string) string {
	return filepath.Join(ctlDir, "logs", "repoctl.log")
}
