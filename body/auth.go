package body

// Authentication is the terminal authentication (0x0102).
// The body is the authentication code issued at registration, without terminator.
type Authentication struct {
	Code string
}

func (*Authentication) MsgID() uint16 { return AuthenticationID }

// DecodeAuthentication takes the whole body as the authentication code.
func DecodeAuthentication(data []byte) (*Authentication, int, error) {
	return &Authentication{Code: string(data)}, len(data), nil
}

func AppendAuthentication(dst []byte, b *Authentication) ([]byte, error) {
	return append(dst, b.Code...), nil
}
