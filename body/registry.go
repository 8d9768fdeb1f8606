package body

import (
	"fmt"
	"slices"

	"github.com/puzpuzpuz/xsync/v3"
)

// Registry maps message ids to body schemas.
//
// Lookups are lock-free and all methods are safe for concurrent use. Schemas are
// expected to be registered during start-up; a registered schema cannot be replaced.
type Registry struct {
	schemas *xsync.MapOf[uint16, Schema]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: xsync.NewMapOf[uint16, Schema]()}
}

// Register adds the schema for msgID.
//
// It returns ErrInvalidSchema if the schema lacks a decode or append function, and
// ErrDuplicateSchema if msgID already has a schema.
func (r *Registry) Register(msgID uint16, schema Schema) error {
	if !schema.valid() {
		return fmt.Errorf("%w: msg id 0x%04X", ErrInvalidSchema, msgID)
	}

	if actual, loaded := r.schemas.LoadOrStore(msgID, schema); loaded {
		return fmt.Errorf("%w: msg id 0x%04X has %q", ErrDuplicateSchema, msgID, actual.Name)
	}

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(msgID uint16, schema Schema) {
	if err := r.Register(msgID, schema); err != nil {
		panic(err)
	}
}

// Lookup returns the schema registered for msgID.
func (r *Registry) Lookup(msgID uint16) (Schema, bool) {
	return r.schemas.Load(msgID)
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	return r.schemas.Size()
}

// IDs returns the registered message ids in ascending order.
func (r *Registry) IDs() []uint16 {
	ids := make([]uint16, 0, r.schemas.Size())
	r.schemas.Range(func(id uint16, _ Schema) bool {
		ids = append(ids, id)
		return true
	})
	slices.Sort(ids)

	return ids
}
