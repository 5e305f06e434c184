// Package handler implements HTTP request handlers.
//
// This package provides HTTP endpoints for:
// - GET /: the landing page, rendered with the current year
// - POST /signup: forwards the submitted name and email to the sheet
//
// Requests are logged through logrus and panics are recovered by chi
// middleware.
package handler
