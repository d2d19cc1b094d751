package logic

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"

	"agrilink-api/internal/model"
	"agrilink-api/internal/svc"
	"agrilink-api/internal/types"
)

type SupportLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSupportLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SupportLogic {
	return &SupportLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SupportLogic) Questions(req *types.QuestionsReq) (*types.QuestionsResp, error) {
	posts, err := l.svcCtx.Repos.Community.Posts(l.ctx, req.Category)
	if err != nil {
		return nil, err
	}

	resp := &types.QuestionsResp{Questions: make([]types.Question, 0, len(posts))}
	for _, p := range posts {
		q := types.Question{
			Id:         p.Id,
			UserId:     p.UserId,
			AuthorName: p.AuthorName,
			Title:      p.Title,
			Content:    p.Content,
			CreatedAt:  p.CreatedAt.UnixMilli(),
		}
		if p.Category.Valid {
			q.Category = p.Category.String
		}
		resp.Questions = append(resp.Questions, q)
	}
	return resp, nil
}

func (l *SupportLogic) CreateQuestion(req *types.CreateQuestionReq) (*types.Question, error) {
	if req.UserId == "" || req.Title == "" || req.Content == "" {
		return nil, errors.New("userId, title and content are required")
	}

	post := &model.CommunityPosts{
		Id:       uuid.NewString(),
		UserId:   req.UserId,
		Title:    req.Title,
		Content:  req.Content,
		Category: nullString(req.Category),
	}
	if err := l.svcCtx.Repos.Community.CreatePost(l.ctx, post); err != nil {
		return nil, err
	}
	l.svcCtx.ChangeFeed.Changed(l.ctx, "community_posts")

	return &types.Question{
		Id:       post.Id,
		UserId:   post.UserId,
		Title:    post.Title,
		Content:  post.Content,
		Category: req.Category,
	}, nil
}
