// Package domain defines the core types and contracts for sheetsignup.
//
// This package contains the signup model, the payload forwarded to the
// spreadsheet endpoint, and the interfaces implemented by the outbound
// client and the landing page renderer.
package domain
