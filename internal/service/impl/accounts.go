package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campusconnect/campus/internal/auth"
	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/media"
	"github.com/campusconnect/campus/internal/plan"
	"github.com/campusconnect/campus/internal/service"
	"github.com/campusconnect/campus/internal/storage"
)

const minPasswordLength = 6

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s srv) Register(ctx context.Context, email, password, name, setupCode string) (*entities.Account, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	if s.cfg.CampusDomain != "" && !strings.HasSuffix(email, s.cfg.CampusDomain) {
		return nil, invalid("use your college email (%s)", s.cfg.CampusDomain)
	}

	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") {
		return nil, invalid("malformed email")
	}

	if name == "" {
		return nil, invalid("name is required")
	}

	if len(password) < minPasswordLength {
		return nil, invalid("password must be at least %d characters", minPasswordLength)
	}

	var isAdmin bool
	if setupCode != "" {
		if s.cfg.AdminSetupCode == "" || setupCode != s.cfg.AdminSetupCode {
			return nil, invalid("wrong setup code")
		}
		isAdmin = true
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	a := &entities.Account{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		IsAdmin:      isAdmin,
		Plan:         plan.Free,
		CreatedAt:    s.now().UTC(),
	}

	id, err := s.s.CreateAccount(ctx, a)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: email already registered", service.ErrRejected)
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	a.ID = id

	log.WithField("account", id).WithField("admin", isAdmin).Info("account registered")

	return a, nil
}

func (s srv) Login(ctx context.Context, email, password string) (string, *entities.Account, error) {
	a, err := s.s.GetAccountByEmail(ctx, normalizeEmail(email))
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return "", nil, fmt.Errorf("failed to get account: %w", err)
	}

	if a == nil || !auth.CheckPassword(a.PasswordHash, password) {
		return "", nil, fmt.Errorf("%w: invalid email or password", service.ErrUnauthorized)
	}

	if a.IsBanned {
		return "", nil, fmt.Errorf("%w: account is banned", service.ErrRejected)
	}

	token, err := s.tokens.Issue(a.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, a, nil
}

func (s srv) GetAccount(ctx context.Context, id int64) (*entities.Account, error) {
	return getAccount(ctx, s.s, id)
}

func (s srv) UpdateProfile(ctx context.Context, id int64, p *entities.Profile) error {
	if err := s.s.UpdateProfile(ctx, id, &entities.Profile{
		Year:       strings.TrimSpace(p.Year),
		Branch:     strings.TrimSpace(p.Branch),
		Bio:        strings.TrimSpace(p.Bio),
		Interests:  strings.TrimSpace(p.Interests),
		LookingFor: strings.TrimSpace(p.LookingFor),
	}); err != nil {
		return translate(err, "account")
	}

	return nil
}

func (s srv) PhotoUploadTicket(ctx context.Context, id int64, contentType string) (*entities.UploadTicket, error) {
	t, err := s.presign(ctx, media.PhotoPrefix, contentType)
	if err != nil {
		return nil, err
	}

	if err := s.s.SetPhoto(ctx, id, t.Key); err != nil {
		return nil, translate(err, "account")
	}

	return t, nil
}

func (s srv) UploadTicket(ctx context.Context, _ int64, contentType string) (*entities.UploadTicket, error) {
	return s.presign(ctx, media.PostPrefix, contentType)
}

func (s srv) presign(ctx context.Context, prefix, contentType string) (*entities.UploadTicket, error) {
	if !media.Allowed(contentType) {
		return nil, invalid("unsupported content type %q", contentType)
	}

	t, err := s.uploader.Presign(ctx, prefix, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return t, nil
}
