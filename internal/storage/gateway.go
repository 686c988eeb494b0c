// Package storage is the persistence gateway: durable key-value storage of
// the domain collections. Each collection is stored as one JSON-encoded
// array under a fixed key, and every save fully overwrites the previous
// contents of that key. The gateway carries no business logic.
package storage

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Collection keys. These names are a stable contract: external consumers
// (the reminder engine, statistics views) read them but never write.
const (
	KeyVehicles  = "vehicles"
	KeyTasks     = "maintenance_tasks"
	KeyRecords   = "maintenance_records"
	KeyFuelLogs  = "fuel_logs"
	KeyReminders = "quick_reminders"
)

// AllKeys lists every collection key the gateway manages.
var AllKeys = []string{KeyVehicles, KeyTasks, KeyRecords, KeyFuelLogs, KeyReminders}

// Gateway defines durable storage for keyed collection payloads.
type Gateway interface {
	// Save overwrites the payload stored under key. There is no merge and no
	// transactional guarantee across keys.
	Save(ctx context.Context, key string, data []byte) error

	// Load returns the payload stored under key, or (nil, nil) when the key
	// has never been written. Errors are reserved for storage faults.
	Load(ctx context.Context, key string) ([]byte, error)

	// Close releases the backing resources.
	Close(ctx context.Context) error
}

// LoadAll reads every collection key in parallel. Keys that have never been
// written are returned with a nil payload.
func LoadAll(ctx context.Context, g Gateway) (map[string][]byte, error) {
	results := make([][]byte, len(AllKeys))
	eg, ctx := errgroup.WithContext(ctx)
	for i, key := range AllKeys {
		eg.Go(func() error {
			data, err := g.Load(ctx, key)
			if err != nil {
				return fmt.Errorf("load %s: %w", key, err)
			}
			results[i] = data
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(AllKeys))
	for i, key := range AllKeys {
		out[key] = results[i]
	}
	return out, nil
}
