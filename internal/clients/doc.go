// Package clients provides adapters for external services.
//
// SheetClient forwards signup payloads to the spreadsheet ingestion
// endpoint. It supports context for cancellation and timeout handling.
package clients
