// Package jt808 implements the package-level framing codec of the JT/T808 vehicle
// terminal communication protocol.
//
// A frame on the wire has the layout:
//
//	[Begin 0x7e][Header][Fragment prefix, 0 or 4 bytes][Body][CheckCode][End 0x7e]
//
// Interior bytes are byte-stuffed so that 0x7e never appears between the delimiters:
//
//   - 0x7e is sent as 0x7d 0x02
//   - 0x7d is sent as 0x7d 0x01
//
// The check code is the XOR of every byte between Begin and the check code itself,
// computed on the unescaped frame.
//
// # Decoding
//
// Codec.Decode unescapes the frame, verifies the check code, parses the header with
// the configured HeaderCodec and, when the header declares a body, decodes the body
// with the schema registered for the header's message id in a body.Registry.
// Frames with an unregistered message id decode successfully with a nil Body.
//
// # Encoding
//
// Codec.Encode serializes the body first, because the header carries the body length,
// then writes the header, body, check code and end delimiter, and finally escapes
// the interior bytes.
//
// # Concurrency
//
// A Codec is immutable after NewCodec and safe for concurrent use. Scratch buffers
// come from a BufferPool and are returned before every call returns.
package jt808
