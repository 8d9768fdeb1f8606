package body

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/go-jt808/internal/util"
)

// Fixed field sizes of the registration body.
const (
	makerIDSize    = 5
	modelSize      = 20
	terminalIDSize = 7
)

// Register is the terminal registration (0x0100).
//
// Wire layout: [Province(2)][City(2)][MakerID(5)][Model(20)][TerminalID(7)][PlateColor(1)][Plate(n)].
// Fixed-size text fields are right padded with 0x00.
type Register struct {
	ProvinceID uint16
	CityID     uint16
	MakerID    string
	Model      string
	TerminalID string
	// PlateColor is 0 when the vehicle is not yet plated; Plate then holds the VIN.
	PlateColor byte
	Plate      string
}

func (*Register) MsgID() uint16 { return RegisterID }

// DecodeRegister decodes a terminal registration body.
func DecodeRegister(data []byte) (*Register, int, error) {
	r := newReader(data)
	reg := &Register{}

	var err error
	if reg.ProvinceID, err = r.readUint16(); err != nil {
		return nil, r.pos, err
	}
	if reg.CityID, err = r.readUint16(); err != nil {
		return nil, r.pos, err
	}

	fields := []struct {
		dst  *string
		size int
	}{
		{&reg.MakerID, makerIDSize},
		{&reg.Model, modelSize},
		{&reg.TerminalID, terminalIDSize},
	}
	for _, f := range fields {
		b, err := r.read(f.size)
		if err != nil {
			return nil, r.pos, err
		}
		*f.dst = util.TrimPad(b, 0x00)
	}

	if reg.PlateColor, err = r.readByte(); err != nil {
		return nil, r.pos, err
	}
	reg.Plate = string(r.rest())

	return reg, r.pos, nil
}

// AppendRegister appends the wire form of b to dst.
func AppendRegister(dst []byte, b *Register) ([]byte, error) {
	dst = binary.BigEndian.AppendUint16(dst, b.ProvinceID)
	dst = binary.BigEndian.AppendUint16(dst, b.CityID)

	fields := []struct {
		name  string
		value string
		size  int
	}{
		{"maker id", b.MakerID, makerIDSize},
		{"model", b.Model, modelSize},
		{"terminal id", b.TerminalID, terminalIDSize},
	}
	for _, f := range fields {
		padded, ok := util.PadRight(f.value, f.size, 0x00)
		if !ok {
			return dst, fmt.Errorf("%w: %s has %d bytes, max %d", ErrFieldTooLong, f.name, len(f.value), f.size)
		}
		dst = append(dst, padded...)
	}

	dst = append(dst, b.PlateColor)

	return append(dst, b.Plate...), nil
}
