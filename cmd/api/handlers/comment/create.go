package comment

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/interaction/service"
	"ReelHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	var param CreateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendErrResponse(c, err)
		return
	}
	userId, err := primitive.ObjectIDFromHex(param.User)
	if err != nil {
		handlers.SendErrResponse(c, errno.RequestErr.WithMessage("User ID and Reel ID are required"))
		return
	}
	reelId, err := primitive.ObjectIDFromHex(param.Reel)
	if err != nil {
		handlers.SendErrResponse(c, errno.RequestErr.WithMessage("User ID and Reel ID are required"))
		return
	}
	var parent *primitive.ObjectID
	if param.ParentComment != "" {
		parentId, err := primitive.ObjectIDFromHex(param.ParentComment)
		if err != nil {
			handlers.SendErrResponse(c, errno.RequestErr.WithMessage("Invalid parent comment id"))
			return
		}
		parent = &parentId
	}

	comment, err := service.NewCommentService(ctx, store).CreateComment(&service.CreateCommentRequest{
		UserId:        userId,
		ReelId:        reelId,
		Text:          param.Text,
		ParentComment: parent,
	})
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusCreated, comment)
}
