package cache

import (
	"context"
	"github.com/umalmyha/customers-console/internal/model"
	"time"
)

// Snapshot is the last fetched full customer list
type Snapshot struct {
	Customers []model.Customer `msgpack:"customers"`
	FetchedAt time.Time        `msgpack:"fetchedAt"`
}

// CustomerListCache holds the full customer list shared by all screens.
// It is replaced as a whole on Write and dropped as a whole on Invalidate, never patched.
// Snapshot written with zero FetchedAt is stamped with current time.
type CustomerListCache interface {
	Read(context.Context) (Snapshot, bool, error)
	Write(context.Context, Snapshot) error
	Invalidate(context.Context) error
}
