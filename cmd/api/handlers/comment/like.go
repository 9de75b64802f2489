package comment

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/interaction/service"
	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeComment toggles the caller's like on a comment.
func LikeComment(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	var param LikeCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendErrResponse(c, errno.RequestErr.WithMessage("User ID is required"))
		return
	}
	userId, err := primitive.ObjectIDFromHex(param.UserId)
	if err != nil {
		handlers.SendErrResponse(c, errno.RequestErr.WithMessage("User ID is required"))
		return
	}

	result, err := service.NewLikeService(ctx, reels, store, recorder).LikeComment(&service.LikeRequest{
		TargetId: id,
		UserId:   userId,
		Client:   utils.GetClientInfo(c),
	})
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	message := "comment Disliked"
	if result.Liked {
		message = "comment liked"
	}
	c.JSON(consts.StatusOK, hutils.H{"message": message, "likes": result.Likes})
}
