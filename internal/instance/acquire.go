package instance

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	// DefaultGracePeriod is how long a WithoutListener record is
	// honored before it is considered stale. A freshly started
	// instance may not have bound its listener yet.
	DefaultGracePeriod = 60 * time.Second

	// DefaultConnectTimeout bounds the connection attempt to a
	// recorded listener, so a dead listener never blocks a
	// forwarding client.
	DefaultConnectTimeout = 250 * time.Millisecond
)

// Options tune the staleness protocol. Zero values take the defaults.
type Options struct {
	GracePeriod    time.Duration
	ConnectTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.GracePeriod == 0 {
		o.GracePeriod = DefaultGracePeriod
	}
	if o.ConnectTimeout == 0 {
		o.ConnectTimeout = DefaultConnectTimeout
	}
	return o
}

// AcquireResult is the outcome of an ownership attempt.
type AcquireResult interface {
	isAcquireResult()
}

// Owned means this process now holds the lock.
type Owned struct {
	Lock *LockFile
}

// Forwarded carries an open connection to the live owner; the caller
// writes its command and closes.
type Forwarded struct {
	Conn net.Conn
}

// Refused means another instance locked the project recently and may
// still be initializing; retry shortly.
type Refused struct {
	TimeLocked time.Time
}

func (Owned) isAcquireResult()     {}
func (Forwarded) isAcquireResult() {}
func (Refused) isAcquireResult()   {}

// AcquireOrForward runs the single-instance protocol against the
// project root:
//
//  1. No lock record: claim ownership with a fresh record.
//  2. WithListener record: try connecting within the timeout. Success
//     forwards; failure means the owner is dead and the lock is stale.
//  3. WithoutListener record: refused while inside the grace period,
//     stale after it.
//
// Stale locks are deleted and reclaimed. A malformed record is a fatal
// error: ownership cannot be determined safely.
func AcquireOrForward(root string, opts Options) (AcquireResult, error) {
	opts = opts.withDefaults()
	lockPath := filepath.Join(root, LockFileName)

	data, err := os.ReadFile(lockPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// A deleting owner may race us here; missing means no lock.
	case err != nil:
		return nil, fmt.Errorf("failed to read lock file: %w", err)
	default:
		record, err := DecodeRecord(data)
		if err != nil {
			return nil, err
		}
		switch r := record.(type) {
		case WithListener:
			addr := net.JoinHostPort(r.Hostname, strconv.Itoa(r.Port))
			conn, err := net.DialTimeout("tcp", addr, opts.ConnectTimeout)
			if err == nil {
				return Forwarded{Conn: conn}, nil
			}
			// Unreachable listener: the owner is gone.
		case WithoutListener:
			if time.Since(r.TimeLocked) < opts.GracePeriod {
				return Refused{TimeLocked: r.TimeLocked}, nil
			}
		}
		if err := os.Remove(lockPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to delete stale lock: %w", err)
		}
	}

	lock, err := newLockFile(root)
	if err != nil {
		return nil, err
	}
	return Owned{Lock: lock}, nil
}

// ForceAcquire claims the project without running the staleness
// protocol, overwriting any existing record. Used by project
// initialization, which owns the directory by definition.
func ForceAcquire(root string) (*LockFile, error) {
	return newLockFile(root)
}
