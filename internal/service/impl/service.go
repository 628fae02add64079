// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/campusconnect/campus/internal/auth"
	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/media"
	"github.com/campusconnect/campus/internal/payment"
	"github.com/campusconnect/campus/internal/service"
	"github.com/campusconnect/campus/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

const (
	listLimit       = 100
	candidatesLimit = 50
	trendingLimit   = 10
	storyTTL        = 24 * time.Hour
)

// Config ...
type Config struct {
	// CampusDomain is the email suffix accounts must be registered with, e.g. @vitbhopal.ac.in.
	CampusDomain string
	// AdminSetupCode grants admin rights on registration. Empty disables admin registration.
	AdminSetupCode string
	// Location defines calendar days for swipe quota.
	Location *time.Location
}

type srv struct {
	s        storage.Storage
	tokens   auth.Tokens
	payments payment.Gateway
	uploader media.Uploader
	cfg      Config
	now      func() time.Time
}

// New creates new instance of service.
func New(
	s storage.Storage,
	tokens auth.Tokens,
	payments payment.Gateway,
	uploader media.Uploader,
	cfg Config,
) service.Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return srv{
		s:        s,
		tokens:   tokens,
		payments: payments,
		uploader: uploader,
		cfg:      cfg,
		now:      time.Now,
	}
}

// getAccount returns account translating storage errors.
func getAccount(ctx context.Context, s storage.Storage, id int64) (*entities.Account, error) {
	a, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, translate(err, "account")
	}

	return a, nil
}

func (s srv) requireAdmin(ctx context.Context, id int64) error {
	a, err := getAccount(ctx, s.s, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fmt.Errorf("%w: admin access only", service.ErrUnauthorized)
		}
		return err
	}

	if !a.IsAdmin || a.IsBanned {
		return fmt.Errorf("%w: admin access only", service.ErrUnauthorized)
	}

	return nil
}

// translate maps storage errors to service ones.
func translate(err error, subject string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %s", service.ErrNotFound, subject)
	case errors.Is(err, storage.ErrAlreadyExists):
		return fmt.Errorf("%w: %s already exists", service.ErrRejected, subject)
	default:
		return fmt.Errorf("failed to process %s: %w", subject, err)
	}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", service.ErrInvalidArgument, fmt.Sprintf(format, args...))
}
