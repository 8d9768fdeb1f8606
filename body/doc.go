// Package body provides the message body registry and a catalog of common JT/T808
// message bodies.
//
// A JT/T808 frame carries a body whose shape is selected by the message id in the
// frame header. The Registry maps each message id to a Schema, a pair of decode and
// append functions for one concrete Body type. The jt808 package resolves the schema
// for every frame it decodes or encodes; frames whose message id has no schema are
// still decoded, only their body is left empty.
//
// Built-in bodies (see DefaultRegistry):
//   - TerminalResponse (0x0001) and PlatformResponse (0x8001): general acknowledgements.
//   - Heartbeat (0x0002): empty keep-alive body.
//   - Register (0x0100): terminal registration.
//   - Authentication (0x0102): terminal authentication code.
//   - Location (0x0200): position report with additional information items.
//
// Custom bodies are added with NewSchema:
//
//	reg := body.DefaultRegistry()
//	reg.MustRegister(0x0900, body.NewSchema("Passthrough", decodePassthrough, appendPassthrough))
//
// All multi-byte integers are big-endian.
package body
