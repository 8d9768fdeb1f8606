package body

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterLookup(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.Len())

	_, ok := r.Lookup(HeartbeatID)
	assert.False(t, ok)

	require.NoError(t, r.Register(HeartbeatID, NewSchema("Heartbeat", DecodeHeartbeat, AppendHeartbeat)))

	schema, ok := r.Lookup(HeartbeatID)
	require.True(t, ok)
	assert.Equal(t, "Heartbeat", schema.Name)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Duplicate(t *testing.T) {
	r := NewRegistry()
	schema := NewSchema("Heartbeat", DecodeHeartbeat, AppendHeartbeat)
	require.NoError(t, r.Register(HeartbeatID, schema))

	err := r.Register(HeartbeatID, schema)
	require.ErrorIs(t, err, ErrDuplicateSchema)
	assert.Contains(t, err.Error(), "0x0002")

	assert.Panics(t, func() { r.MustRegister(HeartbeatID, schema) })
}

func TestRegistry_InvalidSchema(t *testing.T) {
	r := NewRegistry()
	err := r.Register(0x0900, Schema{Name: "broken"})
	require.ErrorIs(t, err, ErrInvalidSchema)
	assert.Equal(t, 0, r.Len())
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []uint16{
		TerminalResponseID, HeartbeatID, RegisterID, AuthenticationID, LocationID, PlatformResponseID,
	}, r.IDs())

	// independent instances
	r.MustRegister(0x0900, NewSchema("Auth", DecodeAuthentication, AppendAuthentication))
	_, ok := DefaultRegistry().Lookup(0x0900)
	assert.False(t, ok)
}

func TestRegistry_Concurrent(t *testing.T) {
	r := DefaultRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id uint16) {
			defer wg.Done()
			_ = r.Register(0x1000+id, NewSchema("Heartbeat", DecodeHeartbeat, AppendHeartbeat))
			_, ok := r.Lookup(LocationID)
			assert.True(t, ok)
		}(uint16(i))
	}
	wg.Wait()

	assert.Equal(t, 56, r.Len())
}

func TestSchema_TypeMismatch(t *testing.T) {
	schema := NewSchema("Heartbeat", DecodeHeartbeat, AppendHeartbeat)

	_, err := schema.Append(nil, &Authentication{Code: "x"})
	require.ErrorIs(t, err, ErrBodyTypeMismatch)
	assert.Contains(t, err.Error(), "*body.Authentication")
}

func TestSchema_DecodeErrorReturnsNilBody(t *testing.T) {
	schema := NewSchema("TerminalResponse", DecodeTerminalResponse, AppendTerminalResponse)

	b, _, err := schema.Decode([]byte{0x00})
	require.ErrorIs(t, err, ErrShortBody)
	assert.Nil(t, b, "a failed decode must not return a typed nil body")
}
