// Package misc carries build information injected with -ldflags.
package misc

import (
	"os"
	"path/filepath"
	"strings"
)

var (
	appName = "cssfe"
	version = "dev"
	gitHash = "unknown"
)

// GetAppName returns program name used for log, report and panic files.
func GetAppName() string {
	if len(appName) > 0 {
		return appName
	}
	return strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
