// file:kvtrie/config/env.go
package config

import "os"

// ReplaceEnvVars replaces ${ENV_VAR} in raw JSON.
func ReplaceEnvVars(data []byte) []byte {
	return []byte(os.Expand(string(data), os.Getenv))
}
