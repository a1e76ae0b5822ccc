// Package timeouts defines shared timeout constants used across the site.
// Centralizing these values prevents drift between handlers and makes the
// durations discoverable.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// LeadSubmit caps a single demo request delivery, simulated delay included.
const LeadSubmit = 15 * time.Second

// SocketWrite caps one frame write on a check stream.
const SocketWrite = 5 * time.Second

// SocketLinger bounds how long a finished check stream waits for the visitor
// to leave. Closing earlier would make the client reconnect and rerun.
const SocketLinger = 2 * time.Minute
