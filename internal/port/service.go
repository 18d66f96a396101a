package port

import (
	"context"

	"golang-netman/internal/types"
)

//go:generate mockgen -source=service.go -destination=../mock/service.go -package=mock

// ConfigurationService is the primary port for interface configuration.
// The manager implements it; transports such as the REST API consume it.
type ConfigurationService interface {
	// SetConfig persists a configuration and applies it to the interface.
	SetConfig(ctx context.Context, cfg types.Configuration) error

	// GetConfig returns the effective (saved-or-default) configuration.
	GetConfig() (types.Configuration, error)

	// GetState returns the effective configuration merged with live
	// interface state.
	GetState(ctx context.Context) (types.Configuration, error)

	// SetHostname pushes a hostname to the interface stack.
	SetHostname(ctx context.Context, name string) error

	// Ready reports whether the service has been initialized.
	Ready() bool

	// InterfaceName returns the name of the managed interface.
	InterfaceName() string
}
