package body

import "encoding/binary"

// ResponseResult is the result code of a general response.
type ResponseResult byte

const (
	ResultSuccess      ResponseResult = 0
	ResultFailure      ResponseResult = 1
	ResultMessageError ResponseResult = 2
	ResultUnsupported  ResponseResult = 3
	// ResultAlarmConfirmed is only sent by the platform.
	ResultAlarmConfirmed ResponseResult = 4
)

// responseSize is the wire size of a general response body.
const responseSize = 5

// generalResponse is the shared layout of terminal and platform general responses:
// [ReplySerial(2)][ReplyID(2)][Result(1)].
type generalResponse struct {
	ReplySerial uint16
	ReplyID     uint16
	Result      ResponseResult
}

func decodeGeneralResponse(data []byte) (generalResponse, int, error) {
	r := newReader(data)

	var resp generalResponse
	var err error
	if resp.ReplySerial, err = r.readUint16(); err != nil {
		return resp, r.pos, err
	}
	if resp.ReplyID, err = r.readUint16(); err != nil {
		return resp, r.pos, err
	}
	result, err := r.readByte()
	if err != nil {
		return resp, r.pos, err
	}
	resp.Result = ResponseResult(result)

	return resp, r.pos, nil
}

func (resp generalResponse) append(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint16(dst, resp.ReplySerial)
	dst = binary.BigEndian.AppendUint16(dst, resp.ReplyID)

	return append(dst, byte(resp.Result))
}

// TerminalResponse is the terminal general response (0x0001).
type TerminalResponse generalResponse

func (*TerminalResponse) MsgID() uint16 { return TerminalResponseID }

// DecodeTerminalResponse decodes a terminal general response body.
func DecodeTerminalResponse(data []byte) (*TerminalResponse, int, error) {
	resp, n, err := decodeGeneralResponse(data)
	if err != nil {
		return nil, n, err
	}
	out := TerminalResponse(resp)

	return &out, n, nil
}

// AppendTerminalResponse appends the wire form of b to dst.
func AppendTerminalResponse(dst []byte, b *TerminalResponse) ([]byte, error) {
	return generalResponse(*b).append(dst), nil
}

// PlatformResponse is the platform general response (0x8001).
type PlatformResponse generalResponse

func (*PlatformResponse) MsgID() uint16 { return PlatformResponseID }

// DecodePlatformResponse decodes a platform general response body.
func DecodePlatformResponse(data []byte) (*PlatformResponse, int, error) {
	resp, n, err := decodeGeneralResponse(data)
	if err != nil {
		return nil, n, err
	}
	out := PlatformResponse(resp)

	return &out, n, nil
}

// AppendPlatformResponse appends the wire form of b to dst.
func AppendPlatformResponse(dst []byte, b *PlatformResponse) ([]byte, error) {
	return generalResponse(*b).append(dst), nil
}
