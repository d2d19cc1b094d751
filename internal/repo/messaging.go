package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"agrilink-api/internal/model"
)

// ConversationSummary is one entry in a user's chat list.
type ConversationSummary struct {
	ID            string
	PartnerID     string
	PartnerName   string
	LastMessage   *string
	LastMessageAt *time.Time
	UnreadCount   int64
	UpdatedAt     time.Time
}

// MessageRecord is a normalised view of the messages table.
type MessageRecord struct {
	ID             string
	ConversationID string
	UserID         string
	Content        string
	ImageURL       *string
	Read           bool
	CreatedAt      time.Time
}

// MessagingRepo backs the direct-chat surface.
type MessagingRepo interface {
	// ConversationsForUser lists conversations the user participates in,
	// most recently active first.
	ConversationsForUser(ctx context.Context, userID string) ([]ConversationSummary, error)
	// EnsureDirectConversation returns the existing two-party conversation
	// between the users, creating one when none exists.
	EnsureDirectConversation(ctx context.Context, userID, partnerID string) (string, error)
	// History returns a conversation's messages oldest first.
	History(ctx context.Context, conversationID string) ([]MessageRecord, error)
	// Append stores a new message and bumps the conversation timestamp.
	Append(ctx context.Context, conversationID, userID, content string, imageURL *string) (MessageRecord, error)
	// MarkRead flags every message from other senders in the conversation as read.
	MarkRead(ctx context.Context, conversationID, readerID string) error
	// Participants returns the user ids enrolled in a conversation.
	Participants(ctx context.Context, conversationID string) ([]string, error)
	// UnreadCount counts unread messages addressed to the user across all
	// their conversations.
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type messagingRepo struct {
	conn          sqlx.SqlConn
	messages      model.MessagesModel
	conversations model.ConversationsModel
}

func newMessagingRepo(deps Dependencies) MessagingRepo {
	return &messagingRepo{
		conn:          deps.DBConn,
		messages:      deps.MessagesModel,
		conversations: deps.ConversationsModel,
	}
}

type conversationSummaryRow struct {
	ID            string         `db:"id"`
	PartnerID     string         `db:"partner_id"`
	PartnerName   sql.NullString `db:"partner_name"`
	LastMessage   sql.NullString `db:"last_message"`
	LastMessageAt sql.NullTime   `db:"last_message_at"`
	UnreadCount   int64          `db:"unread_count"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (r *messagingRepo) ConversationsForUser(ctx context.Context, userID string) ([]ConversationSummary, error) {
	query := `
SELECT
    c.id,
    cp2.user_id AS partner_id,
    p.name AS partner_name,
    lm.content AS last_message,
    lm.created_at AS last_message_at,
    COALESCE(un.cnt, 0) AS unread_count,
    c.updated_at
FROM public.conversations c
JOIN public.conversation_participants cp ON cp.conversation_id = c.id AND cp.user_id = $1
JOIN public.conversation_participants cp2 ON cp2.conversation_id = c.id AND cp2.user_id <> $1
LEFT JOIN public.profiles p ON p.id = cp2.user_id
LEFT JOIN LATERAL (
    SELECT content, created_at
    FROM public.messages m
    WHERE m.conversation_id = c.id
    ORDER BY m.created_at DESC
    LIMIT 1
) lm ON true
LEFT JOIN LATERAL (
    SELECT COUNT(*) AS cnt
    FROM public.messages m
    WHERE m.conversation_id = c.id AND m.user_id <> $1 AND m.read IS NOT TRUE
) un ON true
ORDER BY c.updated_at DESC`

	var rows []conversationSummaryRow
	if err := r.conn.QueryRowsCtx(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("messagingRepo.ConversationsForUser query: %w", err)
	}

	result := make([]ConversationSummary, 0, len(rows))
	for _, row := range rows {
		summary := ConversationSummary{
			ID:          row.ID,
			PartnerID:   row.PartnerID,
			UnreadCount: row.UnreadCount,
			UpdatedAt:   row.UpdatedAt,
		}
		if row.PartnerName.Valid {
			summary.PartnerName = row.PartnerName.String
		}
		if row.LastMessage.Valid {
			value := row.LastMessage.String
			summary.LastMessage = &value
		}
		if row.LastMessageAt.Valid {
			value := row.LastMessageAt.Time
			summary.LastMessageAt = &value
		}
		result = append(result, summary)
	}
	return result, nil
}

func (r *messagingRepo) EnsureDirectConversation(ctx context.Context, userID, partnerID string) (string, error) {
	lookup := `
SELECT cp.conversation_id AS id
FROM public.conversation_participants cp
JOIN public.conversation_participants cp2
    ON cp2.conversation_id = cp.conversation_id AND cp2.user_id = $2
WHERE cp.user_id = $1
LIMIT 1`

	var existing struct {
		ID string `db:"id"`
	}
	err := r.conn.QueryRowCtx(ctx, &existing, lookup, userID, partnerID)
	switch err {
	case nil:
		return existing.ID, nil
	case sqlc.ErrNotFound:
		// fall through to create
	default:
		return "", fmt.Errorf("messagingRepo.EnsureDirectConversation lookup: %w", err)
	}

	conversationID := uuid.NewString()
	err = r.conn.TransactCtx(ctx, func(ctx context.Context, session sqlx.Session) error {
		if _, err := session.ExecCtx(ctx,
			`INSERT INTO public.conversations (id) VALUES ($1)`, conversationID); err != nil {
			return err
		}
		_, err := session.ExecCtx(ctx,
			`INSERT INTO public.conversation_participants (conversation_id, user_id) VALUES ($1, $2), ($1, $3)`,
			conversationID, userID, partnerID)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("messagingRepo.EnsureDirectConversation create: %w", err)
	}
	return conversationID, nil
}

type messageRow struct {
	ID             string         `db:"id"`
	ConversationID string         `db:"conversation_id"`
	UserID         string         `db:"user_id"`
	Content        string         `db:"content"`
	ImageURL       sql.NullString `db:"image_url"`
	Read           sql.NullBool   `db:"read"`
	CreatedAt      time.Time      `db:"created_at"`
}

func (r *messagingRepo) History(ctx context.Context, conversationID string) ([]MessageRecord, error) {
	query := `
SELECT id, conversation_id, user_id, content, image_url, read, created_at
FROM public.messages
WHERE conversation_id = $1
ORDER BY created_at ASC`

	var rows []messageRow
	if err := r.conn.QueryRowsCtx(ctx, &rows, query, conversationID); err != nil {
		return nil, fmt.Errorf("messagingRepo.History query: %w", err)
	}

	result := make([]MessageRecord, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.record())
	}
	return result, nil
}

func (r *messagingRepo) Append(ctx context.Context, conversationID, userID, content string, imageURL *string) (MessageRecord, error) {
	record := MessageRecord{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		UserID:         userID,
		Content:        content,
		ImageURL:       imageURL,
		CreatedAt:      time.Now(),
	}

	var image sql.NullString
	if imageURL != nil {
		image = sql.NullString{String: *imageURL, Valid: true}
	}

	err := r.conn.TransactCtx(ctx, func(ctx context.Context, session sqlx.Session) error {
		if _, err := session.ExecCtx(ctx,
			`INSERT INTO public.messages (id, conversation_id, user_id, content, image_url, read) VALUES ($1, $2, $3, $4, $5, false)`,
			record.ID, conversationID, userID, content, image); err != nil {
			return err
		}
		_, err := session.ExecCtx(ctx,
			`UPDATE public.conversations SET updated_at = now() WHERE id = $1`, conversationID)
		return err
	})
	if err != nil {
		return MessageRecord{}, fmt.Errorf("messagingRepo.Append exec: %w", err)
	}
	return record, nil
}

func (r *messagingRepo) MarkRead(ctx context.Context, conversationID, readerID string) error {
	query := `
UPDATE public.messages
SET read = true
WHERE conversation_id = $1 AND user_id <> $2 AND read IS NOT TRUE`

	if _, err := r.conn.ExecCtx(ctx, query, conversationID, readerID); err != nil {
		return fmt.Errorf("messagingRepo.MarkRead exec: %w", err)
	}
	return nil
}

func (r *messagingRepo) Participants(ctx context.Context, conversationID string) ([]string, error) {
	query := `
SELECT user_id
FROM public.conversation_participants
WHERE conversation_id = $1`

	var rows []struct {
		UserID string `db:"user_id"`
	}
	if err := r.conn.QueryRowsCtx(ctx, &rows, query, conversationID); err != nil {
		return nil, fmt.Errorf("messagingRepo.Participants query: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}
	return ids, nil
}

func (r *messagingRepo) UnreadCount(ctx context.Context, userID string) (int64, error) {
	query := `
SELECT COUNT(*) AS cnt
FROM public.messages m
JOIN public.conversation_participants cp
    ON cp.conversation_id = m.conversation_id AND cp.user_id = $1
WHERE m.user_id <> $1 AND m.read IS NOT TRUE`

	var row struct {
		Cnt int64 `db:"cnt"`
	}
	if err := r.conn.QueryRowCtx(ctx, &row, query, userID); err != nil {
		return 0, fmt.Errorf("messagingRepo.UnreadCount query: %w", err)
	}
	return row.Cnt, nil
}

func (row messageRow) record() MessageRecord {
	rec := MessageRecord{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		UserID:         row.UserID,
		Content:        row.Content,
		Read:           row.Read.Valid && row.Read.Bool,
		CreatedAt:      row.CreatedAt,
	}
	if row.ImageURL.Valid {
		value := row.ImageURL.String
		rec.ImageURL = &value
	}
	return rec
}
