// Package config contains everything related to configuration
package config

import (
	"os"
	"path/filepath"
	"regexp"
)

var apiKeyRe = regexp.MustCompile(`(?m)^\s*api_key\s*=\s*([\w-]+)\s*$`)

func wakaTimeCfgPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wakatime.cfg")
}

// loadWakaTimeCfgKey recovers the API key from the standard ~/.wakatime.cfg
// written by WakaTime editor plugins, for when no env var is set.
func loadWakaTimeCfgKey() string {
	path := wakaTimeCfgPath()
	if path == "" {
		return ""
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	return parseWakaTimeCfg(string(content))
}

func parseWakaTimeCfg(content string) string {
	if match := apiKeyRe.FindStringSubmatch(content); len(match) > 1 {
		return match[1]
	}
	return ""
}
