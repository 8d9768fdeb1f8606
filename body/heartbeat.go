package body

// Heartbeat is the terminal heartbeat (0x0002). It has an empty body.
type Heartbeat struct{}

func (*Heartbeat) MsgID() uint16 { return HeartbeatID }

// DecodeHeartbeat consumes nothing; trailing bytes are ignored.
func DecodeHeartbeat(_ []byte) (*Heartbeat, int, error) {
	return &Heartbeat{}, 0, nil
}

func AppendHeartbeat(dst []byte, _ *Heartbeat) ([]byte, error) {
	return dst, nil
}
