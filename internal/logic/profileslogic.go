package logic

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"agrilink-api/internal/svc"
	"agrilink-api/internal/types"
)

type ProfilesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewProfilesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ProfilesLogic {
	return &ProfilesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ProfilesLogic) Profile(req *types.ProfileReq) (*types.Profile, error) {
	profile, err := l.svcCtx.Repos.Community.Profile(l.ctx, req.Id)
	if err != nil {
		return nil, err
	}

	resp := &types.Profile{
		Id:    profile.Id,
		Email: profile.Email,
		Name:  profile.Name,
	}
	if profile.Phone.Valid {
		resp.Phone = profile.Phone.String
	}
	if profile.Region.Valid {
		resp.Region = profile.Region.String
	}
	return resp, nil
}

func (l *ProfilesLogic) UpdateProfile(req *types.UpdateProfileReq) (*types.Profile, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.Region != "" && !l.svcCtx.Catalog.HasRegion(req.Region) {
		return nil, errors.New("unknown region")
	}

	profile, err := l.svcCtx.Repos.Community.Profile(l.ctx, req.Id)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.Phone = nullString(req.Phone)
	profile.Region = nullString(req.Region)
	if err := l.svcCtx.Repos.Community.UpdateProfile(l.ctx, profile); err != nil {
		return nil, err
	}

	return l.Profile(&types.ProfileReq{Id: req.Id})
}
