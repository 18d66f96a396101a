package netman

import (
	"errors"
	"fmt"
	"net"

	"github.com/sirupsen/logrus"

	"golang-netman/internal/pkg/logging"
	"golang-netman/internal/pkg/netutil"
	"golang-netman/internal/port"
	"golang-netman/internal/types"
)

// schemaVersion is the configuration record layout this build writes.
// Version 1 records are still readable, see loadV1.
const schemaVersion = 2

const (
	keyVersion  = "version"
	keyStatic   = "static"
	keyDisabled = "disabled"
	keyIPInfo   = "ip_info"
	keyDNSInfo  = "dns_info"

	// Version 1 records, written by earlier firmware revisions. The
	// connect flag is the inverse of today's disabled flag.
	keyV1Static  = "eth_static"
	keyV1Connect = "eth_connect"
	keyV1IPInfo  = "eth_ip"
	keyV1DNSInfo = "eth_dns"
)

const (
	ipInfoBlobSize  = 12 // address, netmask, gateway
	dnsInfoBlobSize = types.DNSMaxServers * 4
)

// ConfigStore persists one interface configuration as independently keyed
// fields in a namespace of the key/value store. On save the record is
// erased first and rewritten field by field, so after a failure mid-write
// the namespace is empty rather than a mix of old and new values. The
// trade-off is that a failed save loses the previous record; recovery is
// by the compiled-in defaults.
type ConfigStore struct {
	kv        port.KVStore
	namespace string
	logger    *logrus.Entry
}

// NewConfigStore creates a store bound to the given namespace, typically
// the interface name.
func NewConfigStore(kv port.KVStore, namespace string) *ConfigStore {
	return &ConfigStore{
		kv:        kv,
		namespace: namespace,
		logger:    logging.WithComponentAndInterface("config-store", namespace),
	}
}

// Load reads the stored configuration. It fails with
// KindPersistenceNotFound when the record is absent or incomplete,
// KindPersistenceVersionMismatch when the record was written by a newer
// build, and KindPersistenceIOError on store failures. A partial record is
// rejected as a whole.
func (s *ConfigStore) Load() (types.Configuration, error) {
	var cfg types.Configuration

	bucket, err := s.kv.Open(s.namespace)
	if err != nil {
		return cfg, NewError(KindPersistenceIOError, fmt.Errorf("failed to open namespace %s: %w", s.namespace, err))
	}
	defer bucket.Close()

	version, err := bucket.GetU32(keyVersion)
	if err != nil {
		return cfg, mapStoreError("reading schema version", err)
	}

	if version > schemaVersion {
		return cfg, Errorf(KindPersistenceVersionMismatch,
			"stored version %d exceeds supported version %d", version, schemaVersion)
	}

	if version <= 1 {
		cfg, err = s.loadV1(bucket)
	} else {
		cfg, err = s.loadV2(bucket)
	}
	if err != nil {
		s.logger.WithError(err).Warn("Reading stored configuration failed")
		return types.Configuration{}, err
	}

	return cfg, nil
}

func (s *ConfigStore) loadV2(bucket port.KVBucket) (types.Configuration, error) {
	var cfg types.Configuration

	static, err := bucket.GetU32(keyStatic)
	if err != nil {
		return cfg, mapStoreError("reading static flag", err)
	}
	cfg.IsStatic = static != 0

	disabled, err := bucket.GetU32(keyDisabled)
	if err != nil {
		return cfg, mapStoreError("reading disabled flag", err)
	}
	cfg.IsDisabled = disabled != 0

	if err := readIPInfo(bucket, keyIPInfo, &cfg); err != nil {
		return cfg, err
	}
	if err := readDNSInfo(bucket, keyDNSInfo, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// loadV1 reads a record written under the version 1 layout and migrates
// it: the old connect flag inverts into today's disabled flag.
func (s *ConfigStore) loadV1(bucket port.KVBucket) (types.Configuration, error) {
	var cfg types.Configuration

	static, err := bucket.GetU32(keyV1Static)
	if err != nil {
		return cfg, mapStoreError("reading static flag", err)
	}
	cfg.IsStatic = static != 0

	connect, err := bucket.GetU32(keyV1Connect)
	if err != nil {
		return cfg, mapStoreError("reading connect flag", err)
	}
	cfg.IsDisabled = connect == 0

	if err := readIPInfo(bucket, keyV1IPInfo, &cfg); err != nil {
		return cfg, err
	}
	if err := readDNSInfo(bucket, keyV1DNSInfo, &cfg); err != nil {
		return cfg, err
	}

	s.logger.WithField("stored_version", 1).Info("Migrated configuration record from version 1 layout")
	return cfg, nil
}

// Save erases the stored record and writes cfg field by field. If any
// write fails the namespace is erased again before returning, so the
// store never holds a mix of old and new fields. Defaults are never
// written: saving a default configuration just leaves the store empty.
func (s *ConfigStore) Save(cfg types.Configuration) error {
	bucket, err := s.kv.Open(s.namespace)
	if err != nil {
		return NewError(KindPersistenceIOError, fmt.Errorf("failed to open namespace %s: %w", s.namespace, err))
	}
	defer bucket.Close()

	// Erase the previous record first so a power failure during the
	// writes below cannot leave old and new fields mixed.
	if err := bucket.EraseAll(); err != nil {
		return NewError(KindPersistenceIOError, fmt.Errorf("failed to erase record: %w", err))
	}

	// No point in saving the factory default settings.
	if cfg.IsDefault {
		if err := bucket.Commit(); err != nil {
			return NewError(KindPersistenceIOError, fmt.Errorf("failed to commit erase: %w", err))
		}
		return nil
	}

	if err := s.writeAll(bucket, cfg); err != nil {
		// Do not leave a half-written record lying around.
		s.logger.WithError(err).Error("Writing configuration failed, clearing record")
		if eraseErr := bucket.EraseAll(); eraseErr == nil {
			_ = bucket.Commit()
		}
		return err
	}

	if err := bucket.Commit(); err != nil {
		return NewError(KindPersistenceIOError, fmt.Errorf("failed to commit record: %w", err))
	}

	return nil
}

// writeAll stores every field of cfg under the current schema version.
// Fields are keyed individually so the layout can grow without forcing a
// factory reset after an upgrade.
func (s *ConfigStore) writeAll(bucket port.KVBucket, cfg types.Configuration) error {
	if err := bucket.SetU32(keyVersion, schemaVersion); err != nil {
		return NewError(KindPersistenceIOError, fmt.Errorf("failed to write schema version: %w", err))
	}
	if err := bucket.SetU32(keyStatic, boolU32(cfg.IsStatic)); err != nil {
		return NewError(KindPersistenceIOError, fmt.Errorf("failed to write static flag: %w", err))
	}
	if err := bucket.SetU32(keyDisabled, boolU32(cfg.IsDisabled)); err != nil {
		return NewError(KindPersistenceIOError, fmt.Errorf("failed to write disabled flag: %w", err))
	}
	if err := bucket.SetBlob(keyIPInfo, encodeIPInfo(cfg.IP)); err != nil {
		return NewError(KindPersistenceIOError, fmt.Errorf("failed to write ip info: %w", err))
	}
	if err := bucket.SetBlob(keyDNSInfo, encodeDNSInfo(cfg.DNS)); err != nil {
		return NewError(KindPersistenceIOError, fmt.Errorf("failed to write dns info: %w", err))
	}
	return nil
}

// Clear removes the stored record.
func (s *ConfigStore) Clear() error {
	bucket, err := s.kv.Open(s.namespace)
	if err != nil {
		return NewError(KindPersistenceIOError, fmt.Errorf("failed to open namespace %s: %w", s.namespace, err))
	}
	defer bucket.Close()

	if err := bucket.EraseAll(); err != nil {
		return NewError(KindPersistenceIOError, fmt.Errorf("failed to erase record: %w", err))
	}
	if err := bucket.Commit(); err != nil {
		return NewError(KindPersistenceIOError, fmt.Errorf("failed to commit erase: %w", err))
	}
	return nil
}

func readIPInfo(bucket port.KVBucket, key string, cfg *types.Configuration) error {
	blob, err := bucket.GetBlob(key)
	if err != nil {
		return mapStoreError("reading ip info", err)
	}
	if len(blob) != ipInfoBlobSize {
		return Errorf(KindPersistenceNotFound, "ip info blob holds %d bytes, want %d", len(blob), ipInfoBlobSize)
	}

	cfg.IP = decodeIPInfo(blob)
	return nil
}

func readDNSInfo(bucket port.KVBucket, key string, cfg *types.Configuration) error {
	blob, err := bucket.GetBlob(key)
	if err != nil {
		return mapStoreError("reading dns info", err)
	}
	if len(blob) != dnsInfoBlobSize {
		return Errorf(KindPersistenceNotFound, "dns info blob holds %d bytes, want %d", len(blob), dnsInfoBlobSize)
	}

	cfg.DNS = decodeDNSInfo(blob)
	return nil
}

func encodeIPInfo(info types.IPInfo) []byte {
	blob := make([]byte, 0, ipInfoBlobSize)
	addr := netutil.IPv4Bytes(info.Address)
	mask := netutil.IPv4Bytes(info.Netmask)
	gw := netutil.IPv4Bytes(info.Gateway)
	blob = append(blob, addr[:]...)
	blob = append(blob, mask[:]...)
	blob = append(blob, gw[:]...)
	return blob
}

func decodeIPInfo(blob []byte) types.IPInfo {
	var info types.IPInfo
	info.Address = netutil.IPv4FromBytes([4]byte(blob[0:4]))
	info.Netmask = netutil.IPv4FromBytes([4]byte(blob[4:8]))
	info.Gateway = netutil.IPv4FromBytes([4]byte(blob[8:12]))
	return info
}

func encodeDNSInfo(servers [types.DNSMaxServers]net.IP) []byte {
	blob := make([]byte, 0, dnsInfoBlobSize)
	for _, server := range servers {
		b := netutil.IPv4Bytes(server)
		blob = append(blob, b[:]...)
	}
	return blob
}

func decodeDNSInfo(blob []byte) [types.DNSMaxServers]net.IP {
	var servers [types.DNSMaxServers]net.IP
	for i := range servers {
		servers[i] = netutil.IPv4FromBytes([4]byte(blob[i*4 : i*4+4]))
	}
	return servers
}

func boolU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func mapStoreError(op string, err error) *Error {
	if errors.Is(err, port.ErrNotFound) {
		return NewError(KindPersistenceNotFound, fmt.Errorf("%s: %w", op, err))
	}
	return NewError(KindPersistenceIOError, fmt.Errorf("%s: %w", op, err))
}
