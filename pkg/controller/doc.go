// Package controller holds the HTTP middlewares and helper handlers shared by
// the API server.
//
// WithCORS adds permissive CORS headers and answers OPTIONS preflight
// requests. WithLogger attaches a request-scoped logger carrying a request ID
// to the context and writes an access log line per request. PprofMux exposes
// the net/http/pprof handlers for mounting under a debug path.
package controller
