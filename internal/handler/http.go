package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/amaumene/sheetsignup/internal/domain"
	"github.com/amaumene/sheetsignup/internal/form"
	"github.com/amaumene/sheetsignup/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	landingCache    = "public, max-age=900"
	maxFormBytes    = 64 << 10

	signupOK     = "<p>Thank you for signing up!</p>"
	signupFailed = "<p>Failed to sign up. Please try again later.</p>"
)

type HTTPHandler struct {
	landing domain.PageRenderer
	signups *service.SignupService
	now     func() time.Time
}

func NewHTTPHandler(landing domain.PageRenderer, signups *service.SignupService, now func() time.Time) *HTTPHandler {
	if now == nil {
		now = time.Now
	}
	return &HTTPHandler{
		landing: landing,
		signups: signups,
		now:     now,
	}
}

func (h *HTTPHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(&requestLogger{}))
	r.Use(middleware.Recoverer)

	r.Get("/", h.handleLanding)
	r.Post("/signup", h.handleSignup)
	return r
}

func (h *HTTPHandler) handleLanding(w http.ResponseWriter, r *http.Request) {
	year := strconv.Itoa(h.now().UTC().Year())

	var buf bytes.Buffer
	if err := h.landing.Render(&buf, year); err != nil {
		log.WithFields(log.Fields{
			"component": "landing",
			"error":     err,
		}).Error("failed to render landing page")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.Header().Set("Cache-Control", landingCache)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.WithField("error", err).Error("failed to write landing response")
	}
}

func (h *HTTPHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	signup, err := parseSignup(w, r)
	if err != nil {
		log.WithFields(log.Fields{
			"component": "signup",
			"error":     err,
		}).Debug("rejected signup form")
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	message := signupOK
	if err := h.signups.Submit(r.Context(), signup); err != nil {
		if !errors.Is(err, domain.ErrForwardFailed) {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		message = signupFailed
	}

	h.writeHTML(w, http.StatusOK, message)
}

func parseSignup(w http.ResponseWriter, r *http.Request) (domain.Signup, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	var signup domain.Signup
	if err := r.ParseForm(); err != nil {
		return signup, err
	}
	if err := form.Decode(r.PostForm, &signup); err != nil {
		return signup, err
	}
	return signup, nil
}

func (h *HTTPHandler) writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log.WithField("error", err).Error("failed to write html response")
	}
}
