package service

import (
	"context"
	"fmt"

	"github.com/amaumene/sheetsignup/internal/domain"
	log "github.com/sirupsen/logrus"
)

type SignupService struct {
	forwarder domain.Forwarder
}

func NewSignupService(forwarder domain.Forwarder) *SignupService {
	return &SignupService{forwarder: forwarder}
}

// Submit validates signup and forwards it exactly once.
func (s *SignupService) Submit(ctx context.Context, signup domain.Signup) error {
	if err := signup.Validate(); err != nil {
		return err
	}

	if err := s.forwarder.Forward(ctx, signup.Payload()); err != nil {
		log.WithFields(log.Fields{
			"component": "signup",
			"error":     err,
		}).Error("failed to forward signup")
		return fmt.Errorf("%w: %v", domain.ErrForwardFailed, err)
	}

	log.WithField("component", "signup").Debug("signup forwarded")
	return nil
}
