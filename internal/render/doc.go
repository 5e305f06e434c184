// Package render loads the landing page template embedded at build time
// and renders it with the current year.
package render
