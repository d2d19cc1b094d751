package logic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrilink-api/internal/cache"
	"agrilink-api/internal/repo"
	"agrilink-api/internal/svc"
	"agrilink-api/internal/types"
)

type fakeMessagingRepo struct {
	participants []string
	markedRead   []string
}

func (f *fakeMessagingRepo) ConversationsForUser(context.Context, string) ([]repo.ConversationSummary, error) {
	return nil, nil
}

func (f *fakeMessagingRepo) EnsureDirectConversation(_ context.Context, userID, partnerID string) (string, error) {
	return "conv-" + userID + "-" + partnerID, nil
}

func (f *fakeMessagingRepo) History(context.Context, string) ([]repo.MessageRecord, error) {
	return nil, nil
}

func (f *fakeMessagingRepo) Append(_ context.Context, conversationID, userID, content string, imageURL *string) (repo.MessageRecord, error) {
	return repo.MessageRecord{
		ID:             "m-1",
		ConversationID: conversationID,
		UserID:         userID,
		Content:        content,
		ImageURL:       imageURL,
		CreatedAt:      time.Now(),
	}, nil
}

func (f *fakeMessagingRepo) MarkRead(_ context.Context, _, readerID string) error {
	f.markedRead = append(f.markedRead, readerID)
	return nil
}

func (f *fakeMessagingRepo) Participants(context.Context, string) ([]string, error) {
	return f.participants, nil
}

func (f *fakeMessagingRepo) UnreadCount(context.Context, string) (int64, error) {
	return 0, nil
}

// fakeCache records deletions and misses every read.
type fakeCache struct {
	deleted []string
}

var errCacheMiss = errors.New("cache miss")

func (c *fakeCache) Del(keys ...string) error { return c.DelCtx(context.Background(), keys...) }

func (c *fakeCache) DelCtx(_ context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

func (c *fakeCache) Get(string, any) error { return errCacheMiss }

func (c *fakeCache) GetCtx(context.Context, string, any) error { return errCacheMiss }

func (c *fakeCache) IsNotFound(err error) bool { return errors.Is(err, errCacheMiss) }

func (c *fakeCache) Set(string, any) error { return nil }

func (c *fakeCache) SetCtx(context.Context, string, any) error { return nil }

func (c *fakeCache) SetWithExpire(string, any, time.Duration) error { return nil }
func (c *fakeCache) SetWithExpireCtx(context.Context, string, any, time.Duration) error {
	return nil
}
func (c *fakeCache) Take(any, string, func(any) error) error { return errCacheMiss }
func (c *fakeCache) TakeCtx(context.Context, any, string, func(any) error) error {
	return errCacheMiss
}
func (c *fakeCache) TakeWithExpire(any, string, func(any, time.Duration) error) error {
	return errCacheMiss
}
func (c *fakeCache) TakeWithExpireCtx(context.Context, any, string, func(any, time.Duration) error) error {
	return errCacheMiss
}

func newChatsTestContext(msgRepo *fakeMessagingRepo, c *fakeCache) *svc.ServiceContext {
	return &svc.ServiceContext{
		Cache: c,
		Repos: &repo.Set{Messaging: msgRepo},
	}
}

func TestSendMessageInvalidatesRecipientUnreadCache(t *testing.T) {
	msgRepo := &fakeMessagingRepo{participants: []string{"farmer-1", "buyer-2"}}
	c := &fakeCache{}
	l := NewChatsLogic(context.Background(), newChatsTestContext(msgRepo, c))

	msg, err := l.SendMessage(&types.SendMessageReq{Id: "conv-1", UserId: "farmer-1", Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "conv-1", msg.ConversationId)

	// Only the other participant's badge counter is dropped.
	assert.Equal(t, []string{cache.UnreadCountKey("buyer-2")}, c.deleted)
}

func TestMarkReadInvalidatesReaderUnreadCache(t *testing.T) {
	msgRepo := &fakeMessagingRepo{}
	c := &fakeCache{}
	l := NewChatsLogic(context.Background(), newChatsTestContext(msgRepo, c))

	require.NoError(t, l.MarkRead(&types.MarkReadReq{Id: "conv-1", UserId: "buyer-2"}))
	assert.Equal(t, []string{"buyer-2"}, msgRepo.markedRead)
	assert.Equal(t, []string{cache.UnreadCountKey("buyer-2")}, c.deleted)
}
