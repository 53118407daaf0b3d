package abstractions

import (
	"context"
	"errors"
)

// Item is a flat attribute map as stored in the table, including the
// structural PK/SK attributes. Keeping it backend-agnostic lets the
// repository be tested against an in-memory store.
type Item map[string]string

// Attribute names shared by every record in the table.
const (
	AttrPartitionKey = "PK"
	AttrSortKey      = "SK"
)

var (
	// ErrItemNotFound is returned by GetItem when no record exists at the
	// requested composite key.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists is returned by PutItemIfAbsent when the
	// conditional write is rejected. It is never conflated with transient
	// storage faults: the rejection is the authoritative uniqueness signal.
	ErrItemAlreadyExists = errors.New("item already exists")
)

// ItemStore is the single-table storage engine the repositories compose.
// It exposes exactly three primitives: a point lookup, an atomic
// insert-if-absent, and a secondary-index equality query. The conditional
// write is the only cross-request synchronization point in the system.
type ItemStore interface {
	// GetItem performs a point lookup at the composite key.
	GetItem(ctx context.Context, partitionKey, sortKey string) (Item, error)

	// PutItemIfAbsent writes the item only if no record exists at its
	// composite key. The item must carry PK and SK attributes.
	PutItemIfAbsent(ctx context.Context, item Item) error

	// QueryIndex returns the records whose indexed attribute equals value
	// and whose sort key equals sortKey.
	QueryIndex(ctx context.Context, indexName, attribute, value, sortKey string) ([]Item, error)
}
