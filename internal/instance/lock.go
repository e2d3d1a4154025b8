package instance

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LockFileName is the lock record file marking a project as owned.
const LockFileName = "flist.lock"

// Record is the persisted claim of ownership over a project. It is a
// tagged union in memory; on disk the two variants share an untagged
// JSON object distinguished by field presence.
type Record interface {
	isRecord()
}

// WithListener marks an interactive instance that is live and
// reachable on a control endpoint.
type WithListener struct {
	Hostname string `json:"hostname"`
	Port     int    `json:"listener_port"`
}

// WithoutListener marks an instance that claimed the project but has
// not yet published a listener (or crashed before cleanup).
type WithoutListener struct {
	TimeLocked time.Time `json:"time_locked"`
}

func (WithListener) isRecord()    {}
func (WithoutListener) isRecord() {}

// DecodeRecord infers the record variant from the JSON field shape.
func DecodeRecord(data []byte) (Record, error) {
	var shape struct {
		Hostname   *string    `json:"hostname"`
		Port       *int       `json:"listener_port"`
		TimeLocked *time.Time `json:"time_locked"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("malformed lock record: %w", err)
	}
	switch {
	case shape.Hostname != nil && shape.Port != nil:
		return WithListener{Hostname: *shape.Hostname, Port: *shape.Port}, nil
	case shape.TimeLocked != nil:
		return WithoutListener{TimeLocked: *shape.TimeLocked}, nil
	default:
		return nil, errors.New("malformed lock record: unrecognized shape")
	}
}

// LockFile is a handle on the project's lock record. The owner must
// call Release on every exit path.
type LockFile struct {
	path string
}

// newLockFile writes a fresh WithoutListener record and returns the
// handle. Any existing record at the path is overwritten.
func newLockFile(root string) (*LockFile, error) {
	l := &LockFile{path: filepath.Join(root, LockFileName)}
	if err := l.write(WithoutListener{TimeLocked: time.Now().UTC()}); err != nil {
		return nil, err
	}
	return l, nil
}

// SetListener upgrades the record once the control endpoint is bound.
func (l *LockFile) SetListener(hostname string, port int) error {
	return l.write(WithListener{Hostname: hostname, Port: port})
}

// Release removes the lock record. A missing file is not an error: a
// concurrent reader may treat a mid-delete record as "no lock", and a
// double release must stay benign.
func (l *LockFile) Release() error {
	err := os.Remove(l.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

func (l *LockFile) write(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to serialize lock record: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write lock file: %w", err)
	}
	return nil
}
