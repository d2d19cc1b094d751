package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"agrilink-api/internal/model"
)

// CommunityPost is a question joined with its author's display name.
type CommunityPost struct {
	model.CommunityPosts
	AuthorName string
}

// CommunityRepo backs the support question board and profiles.
type CommunityRepo interface {
	// Posts lists questions newest first, optionally filtered by category.
	Posts(ctx context.Context, category string) ([]CommunityPost, error)
	// CreatePost persists a new question.
	CreatePost(ctx context.Context, post *model.CommunityPosts) error
	// Profile loads one profile by id.
	Profile(ctx context.Context, id string) (*model.Profiles, error)
	// UpdateProfile overwrites the mutable profile fields.
	UpdateProfile(ctx context.Context, profile *model.Profiles) error
}

type communityRepo struct {
	conn     sqlx.SqlConn
	posts    model.CommunityPostsModel
	profiles model.ProfilesModel
}

func newCommunityRepo(deps Dependencies) CommunityRepo {
	return &communityRepo{
		conn:     deps.DBConn,
		posts:    deps.CommunityPostsModel,
		profiles: deps.ProfilesModel,
	}
}

type communityPostRow struct {
	Id         string         `db:"id"`
	UserId     string         `db:"user_id"`
	Title      string         `db:"title"`
	Content    string         `db:"content"`
	Category   sql.NullString `db:"category"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
	AuthorName string         `db:"author_name"`
}

func (r *communityRepo) Posts(ctx context.Context, category string) ([]CommunityPost, error) {
	query := `
SELECT cp.id, cp.user_id, cp.title, cp.content, cp.category, cp.created_at, cp.updated_at,
    COALESCE(p.name, '') AS author_name
FROM public.community_posts cp
LEFT JOIN public.profiles p ON p.id = cp.user_id
ORDER BY cp.created_at DESC`
	args := []any{}
	if category != "" {
		query = `
SELECT cp.id, cp.user_id, cp.title, cp.content, cp.category, cp.created_at, cp.updated_at,
    COALESCE(p.name, '') AS author_name
FROM public.community_posts cp
LEFT JOIN public.profiles p ON p.id = cp.user_id
WHERE cp.category = $1
ORDER BY cp.created_at DESC`
		args = append(args, category)
	}

	var rows []communityPostRow
	if err := r.conn.QueryRowsCtx(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("communityRepo.Posts query: %w", err)
	}

	result := make([]CommunityPost, 0, len(rows))
	for _, row := range rows {
		result = append(result, CommunityPost{
			CommunityPosts: model.CommunityPosts{
				Id:        row.Id,
				UserId:    row.UserId,
				Title:     row.Title,
				Content:   row.Content,
				Category:  row.Category,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			AuthorName: row.AuthorName,
		})
	}
	return result, nil
}

func (r *communityRepo) CreatePost(ctx context.Context, post *model.CommunityPosts) error {
	if _, err := r.posts.Insert(ctx, post); err != nil {
		return fmt.Errorf("communityRepo.CreatePost insert: %w", err)
	}
	return nil
}

func (r *communityRepo) Profile(ctx context.Context, id string) (*model.Profiles, error) {
	return r.profiles.FindOne(ctx, id)
}

func (r *communityRepo) UpdateProfile(ctx context.Context, profile *model.Profiles) error {
	if err := r.profiles.Update(ctx, profile); err != nil {
		return fmt.Errorf("communityRepo.UpdateProfile update: %w", err)
	}
	return nil
}
