package envutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	systemRootEnv = "SystemRoot"
	windirEnv     = "windir"
	systemDir     = "System32"
)

// ResolveExecutable returns the path used to launch name. Names found on PATH
// and names with a directory part are returned unchanged; on Windows a bare
// name missing from PATH falls back to %SystemRoot%\System32.
func ResolveExecutable(name string, env []string) string {
	return resolveExecutable(name, env, runtime.GOOS, exec.LookPath, fileExists)
}

func resolveExecutable(name string, env []string, goos string, lookPath func(string) (string, error), exists func(string) bool) string {
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\`) {
		return name
	}
	if _, err := lookPath(name); err == nil {
		return name
	}
	if goos != "windows" {
		return name
	}
	root := strings.TrimSpace(envVarValue(env, systemRootEnv))
	if root == "" {
		root = strings.TrimSpace(envVarValue(env, windirEnv))
	}
	if root == "" {
		return name
	}
	file := name
	if !strings.EqualFold(filepath.Ext(file), ".exe") {
		file += ".exe"
	}
	candidate := filepath.Join(root, systemDir, file)
	if !exists(candidate) {
		return name
	}
	return candidate
}

// envVarValue returns the last value of key; keys compare case-insensitively
// as they do on Windows.
func envVarValue(env []string, key string) string {
	if key == "" {
		return ""
	}
	var value string
	for _, entry := range env {
		name, val, ok := strings.Cut(entry, "=")
		if ok && strings.EqualFold(name, key) {
			value = val
		}
	}
	return value
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
