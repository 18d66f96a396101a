//go:build unit

package netman

import (
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"golang-netman/internal/adapter/store"
	"golang-netman/internal/mock"
	"golang-netman/internal/pkg/netutil"
	"golang-netman/internal/port"
	"golang-netman/internal/types"
)

func openBackingStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "netman.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func staticTestConfig() types.Configuration {
	cfg := types.Configuration{
		IsValid:  true,
		IsStatic: true,
		IP: types.IPInfo{
			Address: net.ParseIP("10.0.0.5"),
			Netmask: net.ParseIP("255.255.255.0"),
			Gateway: net.ParseIP("10.0.0.1"),
		},
	}
	cfg.DNS[0] = net.ParseIP("10.0.0.1")
	cfg.DNS[1] = net.ParseIP("1.1.1.1")
	return cfg
}

func assertPersistedFieldsEqual(t *testing.T, want, got types.Configuration) {
	t.Helper()
	assert.Equal(t, want.IsStatic, got.IsStatic)
	assert.Equal(t, want.IsDisabled, got.IsDisabled)
	assert.True(t, netutil.IPEqual(want.IP.Address, got.IP.Address), "address mismatch")
	assert.True(t, netutil.IPEqual(want.IP.Netmask, got.IP.Netmask), "netmask mismatch")
	assert.True(t, netutil.IPEqual(want.IP.Gateway, got.IP.Gateway), "gateway mismatch")
	for i := range want.DNS {
		assert.True(t, netutil.IPEqual(want.DNS[i], got.DNS[i]), "dns slot %d mismatch", i)
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	kv := openBackingStore(t)
	s := NewConfigStore(kv, "eth0")

	t.Run("StaticConfiguration", func(t *testing.T) {
		cfg := staticTestConfig()
		require.NoError(t, s.Save(cfg))

		loaded, err := s.Load()
		require.NoError(t, err)
		assertPersistedFieldsEqual(t, cfg, loaded)
	})

	t.Run("DHCPConfiguration", func(t *testing.T) {
		cfg := types.Configuration{IsValid: true, IsStatic: false, IsDisabled: false}
		require.NoError(t, s.Save(cfg))

		loaded, err := s.Load()
		require.NoError(t, err)
		assertPersistedFieldsEqual(t, cfg, loaded)
	})

	t.Run("DisabledConfiguration", func(t *testing.T) {
		cfg := types.Configuration{IsValid: true, IsDisabled: true}
		require.NoError(t, s.Save(cfg))

		loaded, err := s.Load()
		require.NoError(t, err)
		assert.True(t, loaded.IsDisabled)
	})
}

func TestStoreSaveDefaultLeavesStoreEmpty(t *testing.T) {
	kv := openBackingStore(t)
	s := NewConfigStore(kv, "eth0")

	// A previously saved record must be gone afterwards as well.
	require.NoError(t, s.Save(staticTestConfig()))

	def := types.Configuration{IsDefault: true, IsValid: true}
	require.NoError(t, s.Save(def))

	_, err := s.Load()
	assert.True(t, IsKind(err, KindPersistenceNotFound), "expected not found, got %v", err)
}

func TestStoreLoadMissingRecord(t *testing.T) {
	kv := openBackingStore(t)
	s := NewConfigStore(kv, "eth0")

	_, err := s.Load()
	assert.True(t, IsKind(err, KindPersistenceNotFound), "expected not found, got %v", err)
}

func TestStoreLoadVersionMismatch(t *testing.T) {
	kv := openBackingStore(t)
	s := NewConfigStore(kv, "eth0")

	bucket, err := kv.Open("eth0")
	require.NoError(t, err)
	require.NoError(t, bucket.SetU32("version", schemaVersion+1))
	require.NoError(t, bucket.Commit())
	require.NoError(t, bucket.Close())

	_, err = s.Load()
	assert.True(t, IsKind(err, KindPersistenceVersionMismatch), "expected version mismatch, got %v", err)
}

func TestStoreLoadPartialRecordFails(t *testing.T) {
	kv := openBackingStore(t)
	s := NewConfigStore(kv, "eth0")

	bucket, err := kv.Open("eth0")
	require.NoError(t, err)
	require.NoError(t, bucket.SetU32("version", schemaVersion))
	require.NoError(t, bucket.SetU32("static", 1))
	// disabled flag and blobs are missing
	require.NoError(t, bucket.Commit())
	require.NoError(t, bucket.Close())

	_, err = s.Load()
	assert.True(t, IsKind(err, KindPersistenceNotFound), "expected not found, got %v", err)
}

func TestStoreLoadTruncatedBlobFails(t *testing.T) {
	kv := openBackingStore(t)
	s := NewConfigStore(kv, "eth0")

	bucket, err := kv.Open("eth0")
	require.NoError(t, err)
	require.NoError(t, bucket.SetU32("version", schemaVersion))
	require.NoError(t, bucket.SetU32("static", 1))
	require.NoError(t, bucket.SetU32("disabled", 0))
	require.NoError(t, bucket.SetBlob("ip_info", []byte{10, 0, 0, 5}))
	require.NoError(t, bucket.Commit())
	require.NoError(t, bucket.Close())

	_, err = s.Load()
	assert.True(t, IsKind(err, KindPersistenceNotFound), "expected not found, got %v", err)
}

func TestStoreLoadV1Migration(t *testing.T) {
	writeV1Record := func(t *testing.T, kv *store.SQLiteStore, connect uint32) {
		t.Helper()
		bucket, err := kv.Open("eth0")
		require.NoError(t, err)
		require.NoError(t, bucket.SetU32("version", 1))
		require.NoError(t, bucket.SetU32("eth_static", 1))
		require.NoError(t, bucket.SetU32("eth_connect", connect))
		require.NoError(t, bucket.SetBlob("eth_ip", []byte{10, 0, 0, 5, 255, 255, 255, 0, 10, 0, 0, 1}))
		require.NoError(t, bucket.SetBlob("eth_dns", []byte{10, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}))
		require.NoError(t, bucket.Commit())
		require.NoError(t, bucket.Close())
	}

	t.Run("ConnectBecomesEnabled", func(t *testing.T) {
		kv := openBackingStore(t)
		s := NewConfigStore(kv, "eth0")
		writeV1Record(t, kv, 1)

		loaded, err := s.Load()
		require.NoError(t, err)
		assert.True(t, loaded.IsStatic)
		assert.False(t, loaded.IsDisabled)
		assert.True(t, net.ParseIP("10.0.0.5").Equal(loaded.IP.Address))
		assert.True(t, net.ParseIP("10.0.0.1").Equal(loaded.DNS[0]))
		assert.Nil(t, loaded.DNS[1])
	})

	t.Run("NoConnectBecomesDisabled", func(t *testing.T) {
		kv := openBackingStore(t)
		s := NewConfigStore(kv, "eth0")
		writeV1Record(t, kv, 0)

		loaded, err := s.Load()
		require.NoError(t, err)
		assert.True(t, loaded.IsDisabled)
	})

	t.Run("SaveRewritesAsCurrentVersion", func(t *testing.T) {
		kv := openBackingStore(t)
		s := NewConfigStore(kv, "eth0")
		writeV1Record(t, kv, 1)

		loaded, err := s.Load()
		require.NoError(t, err)
		require.NoError(t, s.Save(loaded))

		bucket, err := kv.Open("eth0")
		require.NoError(t, err)
		defer bucket.Close()
		version, err := bucket.GetU32("version")
		require.NoError(t, err)
		assert.Equal(t, uint32(schemaVersion), version)

		_, err = bucket.GetU32("eth_static")
		assert.ErrorIs(t, err, port.ErrNotFound)
	})
}

func TestStoreSaveFaultLeavesStoreEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mock.NewMockKVStore(ctrl)
	bucket := mock.NewMockKVBucket(ctrl)

	kv.EXPECT().Open("eth0").Return(bucket, nil)

	gomock.InOrder(
		bucket.EXPECT().EraseAll().Return(nil),
		bucket.EXPECT().SetU32("version", uint32(schemaVersion)).Return(nil),
		bucket.EXPECT().SetU32("static", uint32(1)).Return(nil),
		bucket.EXPECT().SetU32("disabled", uint32(0)).Return(assert.AnError),
		// The half-written record must be erased and the erase committed.
		bucket.EXPECT().EraseAll().Return(nil),
		bucket.EXPECT().Commit().Return(nil),
		bucket.EXPECT().Close().Return(nil),
	)

	s := NewConfigStore(kv, "eth0")
	err := s.Save(staticTestConfig())
	assert.True(t, IsKind(err, KindPersistenceIOError), "expected i/o error, got %v", err)
}

func TestStoreSaveEraseFaultIsSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mock.NewMockKVStore(ctrl)
	bucket := mock.NewMockKVBucket(ctrl)

	kv.EXPECT().Open("eth0").Return(bucket, nil)
	bucket.EXPECT().EraseAll().Return(assert.AnError)
	bucket.EXPECT().Close().Return(nil)

	s := NewConfigStore(kv, "eth0")
	err := s.Save(staticTestConfig())
	assert.True(t, IsKind(err, KindPersistenceIOError), "expected i/o error, got %v", err)
}

func TestStoreClear(t *testing.T) {
	kv := openBackingStore(t)
	s := NewConfigStore(kv, "eth0")

	require.NoError(t, s.Save(staticTestConfig()))
	require.NoError(t, s.Clear())

	_, err := s.Load()
	assert.True(t, IsKind(err, KindPersistenceNotFound), "expected not found, got %v", err)
}

func TestStoreNamespacesAreIndependent(t *testing.T) {
	kv := openBackingStore(t)
	eth := NewConfigStore(kv, "eth0")
	wlan := NewConfigStore(kv, "wlan0")

	require.NoError(t, eth.Save(staticTestConfig()))

	_, err := wlan.Load()
	assert.True(t, IsKind(err, KindPersistenceNotFound), "expected not found, got %v", err)
}
