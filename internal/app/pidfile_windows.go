//go:build windows

package app

import "fmt"

// CreatePIDFile is not supported on Windows.
func CreatePIDFile(path string) (func(), error) {
	return func() {}, fmt.Errorf("creating PID file %s is not available on Windows", path)
}
