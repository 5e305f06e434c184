package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// requestLogger adapts logrus to chi's RequestLogger middleware.
type requestLogger struct{}

func (l *requestLogger) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &requestLogEntry{
		entry: log.WithFields(log.Fields{
			"component": "http",
			"method":    r.Method,
			"path":      r.URL.Path,
			"remote":    r.RemoteAddr,
		}),
	}
}

type requestLogEntry struct {
	entry *log.Entry
}

func (e *requestLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	e.entry.WithFields(log.Fields{
		"status":   status,
		"bytes":    bytes,
		"duration": elapsed,
	}).Info("request completed")
}

func (e *requestLogEntry) Panic(v interface{}, stack []byte) {
	e.entry.WithFields(log.Fields{
		"panic": v,
		"stack": string(stack),
	}).Error("request panicked")
}
