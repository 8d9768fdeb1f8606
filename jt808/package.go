package jt808

import "github.com/arloliu/go-jt808/body"

// Package is one JT/T808 frame.
type Package struct {
	// Begin and End are the frame delimiters. They are carried verbatim in both
	// directions and not validated, so frames from non-conforming peers survive a
	// decode/encode cycle unchanged.
	Begin  byte
	Header *Header
	// Body is nil when the header declares no body or no schema is registered for
	// the header's message id.
	Body body.Body
	// CheckCode is the XOR of all bytes between Begin and CheckCode.
	CheckCode byte
	End       byte
}

// NewPackage creates a package with both delimiters set to FlagByte.
//
// If h.MsgID is zero and b is not nil, the message id is taken from b.
func NewPackage(h *Header, b body.Body) *Package {
	if h != nil && h.MsgID == 0 && b != nil {
		h.MsgID = b.MsgID()
	}

	return &Package{
		Begin:  FlagByte,
		Header: h,
		Body:   b,
		End:    FlagByte,
	}
}
