// Package script parses capture session scripts.
//
// A capture script is a YAML document listing, per frame number, the control
// values to apply during live capture:
//
//	frames:
//	  - 10:
//	      AeEnable: "false"
//	      ExposureTime: "3000"
//	  - 20:
//	      AnalogueGain: "1.5"
//
// The document is consumed once as a stream of structural events and turned
// into an immutable frame-to-controls table. Parsing is all-or-nothing: any
// structural violation, unknown section or unknown control discards the whole
// table. Value decode failures are softer; the offending value degrades to a
// none-typed placeholder and parsing continues.
//
// After a successful load the table may be read concurrently by the capture
// loop without synchronization.
package script
