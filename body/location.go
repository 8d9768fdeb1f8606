package body

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/arloliu/go-jt808/internal/util"
)

// locationBasicSize is the size of the fixed part of a location report.
const locationBasicSize = 28

// timeLayout is the digit layout of a BCD[6] timestamp, YYMMDDhhmmss.
const timeLayout = "060102150405"

// TimeZone is the zone of every JT/T808 timestamp (GMT+8).
var TimeZone = time.FixedZone("GMT+8", 8*60*60)

// Status bits of Location.Status.
const (
	StatusACCOn      uint32 = 1 << 0
	StatusPositioned uint32 = 1 << 1
	StatusSouth      uint32 = 1 << 2
	StatusWest       uint32 = 1 << 3
)

// ExtraInfo is one additional information item appended to a location report.
type ExtraInfo struct {
	ID    byte
	Value []byte
}

// Location is the location report (0x0200).
//
// Wire layout of the fixed part: [Alarm(4)][Status(4)][Latitude(4)][Longitude(4)]
// [Altitude(2)][Speed(2)][Direction(2)][Time BCD(6)], followed by zero or more
// [ID(1)][Length(1)][Value(n)] additional information items.
type Location struct {
	Alarm  uint32
	Status uint32
	// Latitude and Longitude are in millionths of a degree.
	Latitude  uint32
	Longitude uint32
	// Altitude in meters.
	Altitude uint16
	// Speed in 1/10 km/h.
	Speed uint16
	// Direction in degrees, 0-359, 0 is north.
	Direction uint16
	Time      time.Time
	Extra     []ExtraInfo
}

func (*Location) MsgID() uint16 { return LocationID }

// LatitudeDegrees returns the signed latitude in degrees.
func (l *Location) LatitudeDegrees() float64 {
	v := float64(l.Latitude) / 1e6
	if l.Status&StatusSouth != 0 {
		return -v
	}
	return v
}

// LongitudeDegrees returns the signed longitude in degrees.
func (l *Location) LongitudeDegrees() float64 {
	v := float64(l.Longitude) / 1e6
	if l.Status&StatusWest != 0 {
		return -v
	}
	return v
}

// DecodeLocation decodes a location report body.
func DecodeLocation(data []byte) (*Location, int, error) {
	if len(data) < locationBasicSize {
		return nil, 0, fmt.Errorf("%w: location needs %d bytes, have %d", ErrShortBody, locationBasicSize, len(data))
	}

	r := newReader(data)
	loc := &Location{}
	// length checked above, the fixed part cannot fail
	loc.Alarm, _ = r.readUint32()
	loc.Status, _ = r.readUint32()
	loc.Latitude, _ = r.readUint32()
	loc.Longitude, _ = r.readUint32()
	loc.Altitude, _ = r.readUint16()
	loc.Speed, _ = r.readUint16()
	loc.Direction, _ = r.readUint16()
	ts, _ := r.read(6)

	digits, err := util.DecodeBCD(ts)
	if err != nil {
		return nil, r.pos, fmt.Errorf("location time: %w", err)
	}
	loc.Time, err = time.ParseInLocation(timeLayout, digits, TimeZone)
	if err != nil {
		return nil, r.pos, fmt.Errorf("location time: %w", err)
	}

	for r.remaining() > 0 {
		id, err := r.readByte()
		if err != nil {
			return nil, r.pos, err
		}
		length, err := r.readByte()
		if err != nil {
			return nil, r.pos, fmt.Errorf("extra info 0x%02X: %w", id, err)
		}
		value, err := r.read(int(length))
		if err != nil {
			return nil, r.pos, fmt.Errorf("extra info 0x%02X: %w", id, err)
		}
		loc.Extra = append(loc.Extra, ExtraInfo{ID: id, Value: util.CloneSlice(value, 0)})
	}

	return loc, r.pos, nil
}

// AppendLocation appends the wire form of b to dst. The time is converted to GMT+8.
func AppendLocation(dst []byte, b *Location) ([]byte, error) {
	dst = binary.BigEndian.AppendUint32(dst, b.Alarm)
	dst = binary.BigEndian.AppendUint32(dst, b.Status)
	dst = binary.BigEndian.AppendUint32(dst, b.Latitude)
	dst = binary.BigEndian.AppendUint32(dst, b.Longitude)
	dst = binary.BigEndian.AppendUint16(dst, b.Altitude)
	dst = binary.BigEndian.AppendUint16(dst, b.Speed)
	dst = binary.BigEndian.AppendUint16(dst, b.Direction)

	dst, err := util.AppendBCD(dst, b.Time.In(TimeZone).Format(timeLayout), 6)
	if err != nil {
		return dst, fmt.Errorf("location time: %w", err)
	}

	for _, info := range b.Extra {
		if len(info.Value) > 0xFF {
			return dst, fmt.Errorf("%w: extra info 0x%02X has %d bytes, max 255", ErrFieldTooLong, info.ID, len(info.Value))
		}
		dst = append(dst, info.ID, byte(len(info.Value)))
		dst = append(dst, info.Value...)
	}

	return dst, nil
}
