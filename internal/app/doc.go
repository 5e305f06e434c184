// Package app provides application initialization and lifecycle management.
//
// The App type wires the landing renderer, the sheet client, the signup
// service and the HTTP handler together, binds the listener and runs the
// server until the context is cancelled or a shutdown signal arrives.
package app
