// Package kvstore holds the key-value backends that persist one JSON blob per
// logical key. Backends do not interpret the blobs; decoding is left to the
// typed repository in pkg/db.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// Keys of the persisted collections
const (
	KeySession       = "user"
	KeyBloodRequests = "bloodRequests"
	KeyAppointments  = "appointments"
	KeyNotifications = "notifications"
)

var ErrInvalidKey = errors.New("invalid store key")

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,128}$`)

// Store is a synchronous key-value store of raw JSON blobs.
// Read reports found=false for a key that was never written or was deleted.
type Store interface {
	Read(ctx context.Context, key string) (value []byte, found bool, err error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ValidateKey rejects keys that cannot be used safely as file names or table keys
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
