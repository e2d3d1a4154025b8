package instance

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRecord(t *testing.T, root string, r Record) {
	t.Helper()
	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, LockFileName), data, 0o644))
}

func readRecord(t *testing.T, root string) Record {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, LockFileName))
	require.NoError(t, err)
	record, err := DecodeRecord(data)
	require.NoError(t, err)
	return record
}

func TestAcquireOrForward_NoLock(t *testing.T) {
	root := t.TempDir()

	res, err := AcquireOrForward(root, Options{})
	require.NoError(t, err)

	owned, ok := res.(Owned)
	require.True(t, ok, "expected Owned, got %T", res)
	t.Cleanup(func() { owned.Lock.Release() })

	record := readRecord(t, root)
	_, ok = record.(WithoutListener)
	assert.True(t, ok, "fresh lock should have no listener, got %T", record)
}

func TestAcquireOrForward_StaleWithoutListener(t *testing.T) {
	root := t.TempDir()
	writeRecord(t, root, WithoutListener{TimeLocked: time.Now().Add(-61 * time.Second)})

	res, err := AcquireOrForward(root, Options{})
	require.NoError(t, err)

	owned, ok := res.(Owned)
	require.True(t, ok, "expected Owned after grace period, got %T", res)
	owned.Lock.Release()
}

func TestAcquireOrForward_FreshWithoutListener(t *testing.T) {
	root := t.TempDir()
	locked := time.Now().UTC().Add(-10 * time.Second)
	writeRecord(t, root, WithoutListener{TimeLocked: locked})

	res, err := AcquireOrForward(root, Options{})
	require.NoError(t, err)

	refused, ok := res.(Refused)
	require.True(t, ok, "expected Refused inside grace period, got %T", res)
	assert.True(t, refused.TimeLocked.Equal(locked))
}

func TestAcquireOrForward_LiveListener(t *testing.T) {
	root := t.TempDir()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			conn.Close()
		}
	}()

	addr := ln.Addr().(*net.TCPAddr)
	writeRecord(t, root, WithListener{Hostname: addr.IP.String(), Port: addr.Port})

	res, err := AcquireOrForward(root, Options{})
	require.NoError(t, err)

	fwd, ok := res.(Forwarded)
	require.True(t, ok, "expected Forwarded to live listener, got %T", res)
	fwd.Conn.Close()
}

func TestAcquireOrForward_DeadListener(t *testing.T) {
	root := t.TempDir()

	// Bind and close to get a port that refuses connections.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().(*net.TCPAddr)
	require.NoError(t, ln.Close())

	writeRecord(t, root, WithListener{Hostname: addr.IP.String(), Port: addr.Port})

	res, err := AcquireOrForward(root, Options{})
	require.NoError(t, err)

	owned, ok := res.(Owned)
	require.True(t, ok, "expected Owned after reclaiming dead listener, got %T", res)
	owned.Lock.Release()
}

func TestAcquireOrForward_MalformedRecord(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, LockFileName), []byte("{}"), 0o644))

	_, err := AcquireOrForward(root, Options{})
	assert.Error(t, err, "unrecognized record shape must be fatal")

	require.NoError(t, os.WriteFile(filepath.Join(root, LockFileName), []byte("not json"), 0o644))
	_, err = AcquireOrForward(root, Options{})
	assert.Error(t, err, "unparseable record must be fatal")
}

func TestLockFile_SetListener(t *testing.T) {
	root := t.TempDir()
	lock, err := ForceAcquire(root)
	require.NoError(t, err)
	defer lock.Release()

	require.NoError(t, lock.SetListener("127.0.0.1", 4242))

	record := readRecord(t, root)
	wl, ok := record.(WithListener)
	require.True(t, ok, "expected WithListener after upgrade, got %T", record)
	assert.Equal(t, "127.0.0.1", wl.Hostname)
	assert.Equal(t, 4242, wl.Port)
}

func TestLockFile_Release(t *testing.T) {
	root := t.TempDir()
	lock, err := ForceAcquire(root)
	require.NoError(t, err)

	require.NoError(t, lock.Release())
	_, err = os.Stat(filepath.Join(root, LockFileName))
	assert.True(t, os.IsNotExist(err))

	// Double release stays benign.
	assert.NoError(t, lock.Release())
}

func TestDecodeRecord(t *testing.T) {
	record, err := DecodeRecord([]byte(`{"hostname":"127.0.0.1","listener_port":9000}`))
	require.NoError(t, err)
	assert.Equal(t, WithListener{Hostname: "127.0.0.1", Port: 9000}, record)

	record, err = DecodeRecord([]byte(`{"time_locked":"2026-08-29T10:00:00Z"}`))
	require.NoError(t, err)
	_, ok := record.(WithoutListener)
	assert.True(t, ok)
}
