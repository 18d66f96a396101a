// Package system provides host level operations adapter implementation.
package system

import (
	"fmt"
	"os"

	"golang-netman/internal/port"

	"golang.org/x/sys/unix"
)

// ManagerAdapter is an adapter that implements the SystemManager port using
// the sethostname syscall.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the SystemManager port
var _ port.SystemManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new system manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// SetHostname changes the kernel hostname.
func (s *ManagerAdapter) SetHostname(name string) error {
	if err := unix.Sethostname([]byte(name)); err != nil {
		return fmt.Errorf("failed to set hostname %s: %w", name, err)
	}
	return nil
}

// Hostname returns the current kernel hostname.
func (s *ManagerAdapter) Hostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("failed to read hostname: %w", err)
	}
	return name, nil
}
