package user

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/user/service"
	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func bindFollow(c *app.RequestContext) (*service.FollowRequest, error) {
	targetId, err := handlers.PathObjectID(c, "id")
	if err != nil {
		return nil, err
	}
	var param FollowParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		return nil, errno.RequestErr.WithMessage("User ID is required")
	}
	userId, err := primitive.ObjectIDFromHex(param.UserId)
	if err != nil {
		return nil, errno.RequestErr.WithMessage("Invalid user id")
	}
	return &service.FollowRequest{
		TargetId: targetId,
		UserId:   userId,
		Client:   utils.GetClientInfo(c),
	}, nil
}

func FollowUser(ctx context.Context, c *app.RequestContext) {
	req, err := bindFollow(c)
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	if err := service.NewFollowService(ctx, store, recorder).Follow(req); err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, hutils.H{"message": "User followed"})
}

func UnfollowUser(ctx context.Context, c *app.RequestContext) {
	req, err := bindFollow(c)
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	if err := service.NewFollowService(ctx, store, recorder).Unfollow(req); err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, hutils.H{"message": "User unfollowed"})
}
