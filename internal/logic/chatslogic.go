package logic

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"agrilink-api/internal/cache"
	"agrilink-api/internal/repo"
	"agrilink-api/internal/svc"
	"agrilink-api/internal/types"
)

type ChatsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatsLogic {
	return &ChatsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatsLogic) Conversations(req *types.ConversationsReq) (*types.ConversationsResp, error) {
	if req.UserId == "" {
		return nil, errors.New("userId is required")
	}

	summaries, err := l.svcCtx.Repos.Messaging.ConversationsForUser(l.ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	resp := &types.ConversationsResp{Conversations: make([]types.Conversation, 0, len(summaries))}
	for _, s := range summaries {
		conv := types.Conversation{
			Id:          s.ID,
			PartnerId:   s.PartnerID,
			PartnerName: s.PartnerName,
			UnreadCount: s.UnreadCount,
			UpdatedAt:   s.UpdatedAt.UnixMilli(),
		}
		if s.LastMessage != nil {
			conv.LastMessage = *s.LastMessage
		}
		if s.LastMessageAt != nil {
			conv.LastMessageAt = s.LastMessageAt.UnixMilli()
		}
		resp.Conversations = append(resp.Conversations, conv)
	}
	return resp, nil
}

func (l *ChatsLogic) CreateConversation(req *types.CreateConversationReq) (*types.CreateConversationResp, error) {
	if req.UserId == "" || req.PartnerId == "" {
		return nil, errors.New("userId and partnerId are required")
	}
	if req.UserId == req.PartnerId {
		return nil, errors.New("cannot start a conversation with yourself")
	}

	id, err := l.svcCtx.Repos.Messaging.EnsureDirectConversation(l.ctx, req.UserId, req.PartnerId)
	if err != nil {
		return nil, err
	}
	return &types.CreateConversationResp{Id: id}, nil
}

func (l *ChatsLogic) Messages(req *types.MessagesReq) (*types.MessagesResp, error) {
	records, err := l.svcCtx.Repos.Messaging.History(l.ctx, req.Id)
	if err != nil {
		return nil, err
	}

	resp := &types.MessagesResp{Messages: make([]types.Message, 0, len(records))}
	for _, rec := range records {
		resp.Messages = append(resp.Messages, messageView(rec))
	}
	return resp, nil
}

func (l *ChatsLogic) SendMessage(req *types.SendMessageReq) (*types.Message, error) {
	if req.UserId == "" || req.Content == "" {
		return nil, errors.New("userId and content are required")
	}

	var imageURL *string
	if req.ImageUrl != "" {
		imageURL = &req.ImageUrl
	}
	record, err := l.svcCtx.Repos.Messaging.Append(l.ctx, req.Id, req.UserId, req.Content, imageURL)
	if err != nil {
		return nil, err
	}
	l.svcCtx.ChangeFeed.Changed(l.ctx, "messages")
	l.invalidateRecipientUnread(req.Id, req.UserId)

	view := messageView(record)
	return &view, nil
}

// invalidateRecipientUnread drops the cached unread counters of the other
// participants after a send, so their badge does not read stale until the
// cache TTL elapses.
func (l *ChatsLogic) invalidateRecipientUnread(conversationID, senderID string) {
	if l.svcCtx.Cache == nil {
		return
	}
	participants, err := l.svcCtx.Repos.Messaging.Participants(l.ctx, conversationID)
	if err != nil {
		l.Errorf("load participants for %s: %v", conversationID, err)
		return
	}
	for _, id := range participants {
		if id != senderID {
			l.invalidateUnread(id)
		}
	}
}

func (l *ChatsLogic) MarkRead(req *types.MarkReadReq) error {
	if req.UserId == "" {
		return errors.New("userId is required")
	}
	if err := l.svcCtx.Repos.Messaging.MarkRead(l.ctx, req.Id, req.UserId); err != nil {
		return err
	}
	l.invalidateUnread(req.UserId)
	return nil
}

func (l *ChatsLogic) UnreadCount(req *types.UnreadCountReq) (*types.UnreadCountResp, error) {
	if req.UserId == "" {
		return nil, errors.New("userId is required")
	}

	key := cache.UnreadCountKey(req.UserId)
	if l.svcCtx.Cache != nil {
		var cached types.UnreadCountResp
		if err := l.svcCtx.Cache.GetCtx(l.ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	count, err := l.svcCtx.Repos.Messaging.UnreadCount(l.ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	resp := &types.UnreadCountResp{Count: count}
	if l.svcCtx.Cache != nil {
		ttl := cache.UnreadCountTTL(l.svcCtx.TTL)
		if err := l.svcCtx.Cache.SetWithExpireCtx(l.ctx, key, resp, ttl); err != nil {
			l.Errorf("set cache %s: %v", key, err)
		}
	}
	return resp, nil
}

func (l *ChatsLogic) invalidateUnread(userID string) {
	if l.svcCtx.Cache == nil {
		return
	}
	key := cache.UnreadCountKey(userID)
	if err := l.svcCtx.Cache.DelCtx(l.ctx, key); err != nil {
		l.Errorf("del cache %s: %v", key, err)
	}
}

func messageView(rec repo.MessageRecord) types.Message {
	view := types.Message{
		Id:             rec.ID,
		ConversationId: rec.ConversationID,
		UserId:         rec.UserID,
		Content:        rec.Content,
		Read:           rec.Read,
		CreatedAt:      rec.CreatedAt.UnixMilli(),
	}
	if rec.ImageURL != nil {
		view.ImageUrl = *rec.ImageURL
	}
	return view
}
