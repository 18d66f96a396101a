package netman

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"golang-netman/internal/pkg/logging"
	"golang-netman/internal/pkg/metrics"
	"golang-netman/internal/pkg/netutil"
	"golang-netman/internal/port"
	"golang-netman/internal/types"
)

// State is the lifecycle state of a Manager.
type State int

const (
	// StateUninitialized is the state before Init and after Close.
	StateUninitialized State = iota
	// StateInitializing is the transient state while Init runs.
	StateInitializing
	// StateReady is the operational state.
	StateReady
)

// String returns a human readable state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

const defaultEventBuffer = 16

// Manager is the configuration lifecycle service for one network
// interface. It owns the interface controller, the configuration store
// and the connection state tracker, and consumes link events from the
// monitor through a bounded channel drained by a single goroutine.
//
// Foreground operations are serialized by an internal mutex. The event
// loop never takes that mutex; it only touches the atomic state tracker,
// so it cannot be starved by a slow foreground call.
type Manager struct {
	controller  port.NetifController
	monitor     port.LinkMonitor
	store       *ConfigStore
	config      *ConfigManager
	eventBuffer int
	logger      *logrus.Entry

	mu      sync.Mutex
	state   State
	tracker *ConnectionStateTracker
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// Ensure Manager implements the ConfigurationService port
var _ port.ConfigurationService = (*Manager)(nil)

// NewManager creates an uninitialized manager. eventBuffer bounds the link
// event channel; zero selects the default.
func NewManager(kv port.KVStore, controller port.NetifController, monitor port.LinkMonitor, eventBuffer int) *Manager {
	if eventBuffer <= 0 {
		eventBuffer = defaultEventBuffer
	}

	store := NewConfigStore(kv, controller.InterfaceName())
	return &Manager{
		controller:  controller,
		monitor:     monitor,
		store:       store,
		config:      NewConfigManager(store, controller),
		eventBuffer: eventBuffer,
		logger:      logging.WithComponentAndInterface("manager", controller.InterfaceName()),
	}
}

// Init attaches the controller to the interface, starts link event
// handling, resolves the effective configuration and applies it. A second
// Init on a ready manager fails with KindAlreadyInitialized and leaves the
// first instance untouched. Any failure rolls the manager back to the
// uninitialized state.
func (m *Manager) Init(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateUninitialized {
		return Errorf(KindAlreadyInitialized, "manager is %s", m.state)
	}
	m.state = StateInitializing

	m.tracker = NewConnectionStateTracker()

	if err := m.controller.Attach(ctx); err != nil {
		m.rollbackLocked()
		return NewError(KindInterfaceError, err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	events := make(chan types.LinkEvent, m.eventBuffer)

	m.wg.Add(2)
	go m.runMonitor(runCtx, events)
	go m.eventLoop(runCtx, events, m.tracker)

	cfg := m.config.EffectiveConfig()
	if err := m.config.Apply(ctx, cfg); err != nil {
		m.rollbackLocked()
		return err
	}

	m.state = StateReady
	m.logger.WithFields(logrus.Fields{
		"static":   cfg.IsStatic,
		"disabled": cfg.IsDisabled,
		"default":  cfg.IsDefault,
	}).Info("Network manager initialized")
	return nil
}

// rollbackLocked releases everything a failed Init may have created and
// returns the manager to the uninitialized state. Callers hold m.mu.
func (m *Manager) rollbackLocked() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
		m.wg.Wait()

		// Apply may have started the DHCP client before failing.
		if err := m.controller.StopDHCPClient(context.Background()); err != nil && !errors.Is(err, port.ErrDHCPAlreadyStopped) {
			m.logger.WithError(err).Warn("Failed to stop DHCP client during rollback")
		}
	}

	m.tracker = nil
	m.state = StateUninitialized
	m.logger.Warn("Initialization rolled back")
}

// Close stops event handling and the DHCP client and returns the manager
// to the uninitialized state. The interface keeps its current addressing
// so the device stays reachable. Closing an uninitialized manager is a
// no-op.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateReady {
		return nil
	}

	m.cancel()
	m.cancel = nil
	m.wg.Wait()

	if err := m.controller.StopDHCPClient(context.Background()); err != nil && !errors.Is(err, port.ErrDHCPAlreadyStopped) {
		m.logger.WithError(err).Warn("Failed to stop DHCP client during shutdown")
	}

	m.tracker = nil
	m.state = StateUninitialized
	m.logger.Info("Network manager closed")
	return nil
}

// runMonitor drives the link monitor until shutdown.
func (m *Manager) runMonitor(ctx context.Context, events chan<- types.LinkEvent) {
	defer m.wg.Done()

	if err := m.monitor.Run(ctx, events); err != nil && ctx.Err() == nil {
		m.logger.WithError(err).Error("Link monitor terminated")
	}
}

// eventLoop is the single consumer of link events. It updates the sticky
// state bits and never blocks on foreground operations.
func (m *Manager) eventLoop(ctx context.Context, events <-chan types.LinkEvent, tracker *ConnectionStateTracker) {
	defer m.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-events:
			m.handleEvent(ctx, event, tracker)
		}
	}
}

func (m *Manager) handleEvent(ctx context.Context, event types.LinkEvent, tracker *ConnectionStateTracker) {
	switch event.Kind {
	case types.LinkEventStarted:
		tracker.Set(BitStarted)
		m.logger.Info("Interface started")
	case types.LinkEventStopped:
		tracker.Clear(BitStarted)
		m.logger.Info("Interface stopped")
	case types.LinkEventUp:
		tracker.Set(BitConnected)
		m.logger.WithField("mac", event.HardwareAddr.String()).Info("Link up")
		if addrs, err := m.controller.LinkLocalAddresses(ctx); err == nil && len(addrs) > 0 {
			m.logger.WithField("link_local", addrs[0].String()).Debug("IPv6 link local address present")
		}
	case types.LinkEventDown:
		tracker.Clear(BitConnected)
		m.logger.Info("Link down")
	default:
		// Other events carry no state transition.
	}
}

// SetConfig persists cfg and applies it to the interface. A persistence
// failure is logged and does not block application, so the interface can
// run a configuration that did not get saved.
func (m *Manager) SetConfig(ctx context.Context, cfg types.Configuration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateReady {
		return Errorf(KindNotInitialized, "manager is %s", m.state)
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	if err := m.store.Save(cfg); err != nil {
		metrics.StoreSaveErrors.Inc()
		m.logger.WithError(err).Error("Failed to persist configuration, applying anyway")
	}

	return m.config.Apply(ctx, cfg)
}

// validateConfig rejects configurations the controller could never apply.
func validateConfig(cfg types.Configuration) error {
	if !cfg.IsStatic {
		return nil
	}
	if netutil.IsAnyIP(cfg.IP.Address) {
		return Errorf(KindInvalidArgument, "static configuration requires an address")
	}
	if netutil.MaskFromIP(cfg.IP.Netmask) == nil {
		return Errorf(KindInvalidArgument, "static configuration requires an IPv4 netmask")
	}
	return nil
}

// GetConfig returns the effective (saved-or-default) configuration. It
// reads only the store and works in any lifecycle state.
func (m *Manager) GetConfig() (types.Configuration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.config.EffectiveConfig(), nil
}

// GetState merges the sticky connection bit with configuration data.
// While disconnected it reports the effective configuration. While
// connected it builds a live snapshot: DHCP client stopped means static
// addressing is in effect, and static addressing is read back from the
// interface rather than the store.
func (m *Manager) GetState(ctx context.Context) (types.Configuration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateReady {
		return types.Configuration{}, Errorf(KindNotInitialized, "manager is %s", m.state)
	}

	if !m.tracker.IsSet(BitConnected) {
		cfg := m.config.EffectiveConfig()
		cfg.IsConnected = false
		return cfg, nil
	}

	var cfg types.Configuration
	cfg.IsConnected = true

	status, err := m.controller.DHCPStatus(ctx)
	if err != nil {
		return types.Configuration{}, NewError(KindInterfaceError, fmt.Errorf("fetching DHCP status: %w", err))
	}

	if status == types.DHCPStatusStopped {
		cfg.IsStatic = true

		info, err := m.controller.IPInfo(ctx)
		if err != nil {
			return types.Configuration{}, NewError(KindInterfaceError, fmt.Errorf("fetching ip info: %w", err))
		}
		cfg.IP = info

		for idx := range cfg.DNS {
			server, err := m.controller.DNSInfo(ctx, idx)
			if err != nil {
				return types.Configuration{}, NewError(KindInterfaceError, fmt.Errorf("fetching dns info: %w", err))
			}
			cfg.DNS[idx] = server
		}
	}

	cfg.IsValid = true
	return cfg, nil
}

// SetHostname forwards a hostname to the interface stack. The manager
// must be ready.
func (m *Manager) SetHostname(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateReady {
		return Errorf(KindNotInitialized, "manager is %s", m.state)
	}
	if name == "" {
		return Errorf(KindInvalidArgument, "hostname must not be empty")
	}

	if err := m.controller.SetHostname(ctx, name); err != nil {
		return NewError(KindInterfaceError, err)
	}
	return nil
}

// Ready reports whether the manager has been initialized.
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateReady
}

// InterfaceName returns the name of the managed interface.
func (m *Manager) InterfaceName() string {
	return m.controller.InterfaceName()
}
