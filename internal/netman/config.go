package netman

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"golang-netman/internal/pkg/logging"
	"golang-netman/internal/pkg/metrics"
	"golang-netman/internal/pkg/netutil"
	"golang-netman/internal/port"
	"golang-netman/internal/types"
)

// DefaultConfig returns the compiled-in defaults: DHCP addressing on an
// enabled interface.
func DefaultConfig() types.Configuration {
	return types.Configuration{
		IsDefault:  true,
		IsValid:    true,
		IsStatic:   false,
		IsDisabled: false,
	}
}

// ConfigManager resolves the effective configuration and applies
// configurations to the interface controller.
type ConfigManager struct {
	store      *ConfigStore
	controller port.NetifController
	logger     *logrus.Entry
}

// NewConfigManager creates a manager over the given store and controller.
func NewConfigManager(store *ConfigStore, controller port.NetifController) *ConfigManager {
	return &ConfigManager{
		store:      store,
		controller: controller,
		logger:     logging.WithComponentAndInterface("config", controller.InterfaceName()),
	}
}

// EffectiveConfig returns the stored configuration, or the compiled-in
// defaults when no usable record exists. Load failures are absorbed here:
// resolution always yields a valid configuration.
func (m *ConfigManager) EffectiveConfig() types.Configuration {
	cfg, err := m.store.Load()
	if err != nil {
		m.logger.WithError(err).Info("No saved config found, setting defaults")
		return DefaultConfig()
	}

	// Any config read from the store is usable once it got this far.
	cfg.IsValid = true
	return cfg
}

// Apply pushes cfg to the interface:
//
//  1. a disabled configuration stops the interface, nothing else is touched
//  2. a static configuration stops the DHCP client and pushes addressing
//     and DNS entries
//  3. a DHCP configuration starts the DHCP client
//  4. the interface is started
//
// Collaborator reports of "already in requested state" count as success so
// reapplying the same configuration is harmless.
func (m *ConfigManager) Apply(ctx context.Context, cfg types.Configuration) error {
	err := m.apply(ctx, cfg)
	if err != nil {
		metrics.ConfigApplies.WithLabelValues("error").Inc()
		return err
	}
	metrics.ConfigApplies.WithLabelValues("ok").Inc()
	return nil
}

func (m *ConfigManager) apply(ctx context.Context, cfg types.Configuration) error {
	if cfg.IsDisabled {
		if err := m.controller.Stop(ctx); err != nil && !errors.Is(err, port.ErrAlreadyStopped) {
			return NewError(KindInterfaceError, err)
		}
		m.logger.Info("Interface disabled by configuration")
		return nil
	}

	if cfg.IsStatic {
		// Best effort, a client that fails to stop must not block static
		// addressing.
		if err := m.controller.StopDHCPClient(ctx); err != nil && !errors.Is(err, port.ErrDHCPAlreadyStopped) {
			m.logger.WithError(err).Warn("Failed to stop DHCP client")
		}

		if err := m.controller.SetIPInfo(ctx, cfg.IP); err != nil {
			return NewError(KindInterfaceError, err)
		}

		for idx, server := range cfg.DNS {
			if netutil.IsAnyIP(server) {
				continue
			}
			if err := m.controller.SetDNSInfo(ctx, idx, server); err != nil {
				m.logger.WithError(err).WithField("slot", idx).Error("Setting DNS server failed")
			}
		}
	} else {
		if err := m.controller.StartDHCPClient(ctx); err != nil {
			if errors.Is(err, port.ErrDHCPAlreadyStarted) {
				m.logger.Debug("DHCP client already started")
			} else {
				return NewError(KindInterfaceError, err)
			}
		}
	}

	if err := m.controller.Start(ctx); err != nil {
		if errors.Is(err, port.ErrAlreadyStarted) {
			m.logger.Debug("Interface already started")
		} else {
			return NewError(KindInterfaceError, err)
		}
	}

	return nil
}

// Equal reports whether two configurations select the same interface
// behavior. The comparison is deliberately shallow: the disabled and
// static flags always count, addressing and DNS count only when both
// configurations are static. It is a change detection heuristic, not a
// structural equality.
func Equal(a, b types.Configuration) bool {
	if a.IsDisabled != b.IsDisabled || a.IsStatic != b.IsStatic {
		return false
	}
	if !a.IsStatic {
		return true
	}
	if !netutil.IPEqual(a.IP.Address, b.IP.Address) ||
		!netutil.IPEqual(a.IP.Netmask, b.IP.Netmask) ||
		!netutil.IPEqual(a.IP.Gateway, b.IP.Gateway) {
		return false
	}
	for i := range a.DNS {
		if !netutil.IPEqual(a.DNS[i], b.DNS[i]) {
			return false
		}
	}
	return true
}
