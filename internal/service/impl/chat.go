package impl

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusconnect/campus/internal/entities"
	"github.com/campusconnect/campus/internal/service"
)

func (s srv) ListMatches(ctx context.Context, account int64) ([]*entities.Match, error) {
	mm, err := s.s.ListMatches(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	return mm, nil
}

// chatRoom returns match the account participates in.
func (s srv) chatRoom(ctx context.Context, matchID, account int64) (*entities.Match, error) {
	m, err := s.s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, translate(err, "match")
	}

	if !m.Has(account) {
		return nil, fmt.Errorf("%w: not your chat", service.ErrUnauthorized)
	}

	return m, nil
}

func (s srv) ListMessages(ctx context.Context, matchID, account int64) ([]*entities.Message, error) {
	if _, err := s.chatRoom(ctx, matchID, account); err != nil {
		return nil, err
	}

	mm, err := s.s.ListMessages(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return mm, nil
}

func (s srv) SendMessage(ctx context.Context, matchID, sender int64, text string) (*entities.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("message can not be empty")
	}

	if _, err := s.chatRoom(ctx, matchID, sender); err != nil {
		return nil, err
	}

	m := &entities.Message{
		MatchID:   matchID,
		SenderID:  sender,
		Text:      text,
		CreatedAt: s.now().UTC(),
	}

	id, err := s.s.CreateMessage(ctx, m)
	if err != nil {
		return nil, translate(err, "match")
	}
	m.ID = id

	return m, nil
}
