package body

// Message ids of the built-in bodies.
const (
	TerminalResponseID uint16 = 0x0001
	HeartbeatID        uint16 = 0x0002
	RegisterID         uint16 = 0x0100
	AuthenticationID   uint16 = 0x0102
	LocationID         uint16 = 0x0200
	PlatformResponseID uint16 = 0x8001
)

// DefaultRegistry returns a new registry holding the built-in catalog.
//
// Each call returns an independent registry, so applications may add their own
// schemas without affecting other users.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(TerminalResponseID, NewSchema("TerminalResponse", DecodeTerminalResponse, AppendTerminalResponse))
	r.MustRegister(PlatformResponseID, NewSchema("PlatformResponse", DecodePlatformResponse, AppendPlatformResponse))
	r.MustRegister(HeartbeatID, NewSchema("Heartbeat", DecodeHeartbeat, AppendHeartbeat))
	r.MustRegister(RegisterID, NewSchema("Register", DecodeRegister, AppendRegister))
	r.MustRegister(AuthenticationID, NewSchema("Authentication", DecodeAuthentication, AppendAuthentication))
	r.MustRegister(LocationID, NewSchema("Location", DecodeLocation, AppendLocation))

	return r
}
