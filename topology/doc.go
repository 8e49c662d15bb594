// Package topology is the external reader/writer layer of §6: it
// parses the CSV shapes that feed a core.Graph (loads, links, link
// configs, switches, node positions) and writes the per-run output CSVs
// the driver produces. None of it is imported by core, propagate,
// selector, inertia, or balance — the boundary described in §1 is
// that those packages only ever see a *core.Graph and plain Go values.
package topology

import "errors"

// ErrMalformedRecord is returned when a CSV row does not have the
// expected shape for its file (wrong column count, unparseable number).
var ErrMalformedRecord = errors.New("topology: malformed record")

// ErrUnknownConfig is returned when a links.csv row references a
// link-config id absent from the parsed config table.
var ErrUnknownConfig = errors.New("topology: unknown link config")

// ErrMissingHeader is returned when a CSV file is empty (no header row).
var ErrMissingHeader = errors.New("topology: missing header row")

// ErrUnknownSwitchState is returned when switches.csv carries a State
// value other than "open" or "closed".
var ErrUnknownSwitchState = errors.New("topology: unknown switch state")
