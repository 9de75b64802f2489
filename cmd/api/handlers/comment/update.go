package comment

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/interaction/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	var param UpdateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendErrResponse(c, err)
		return
	}

	comment, err := service.NewCommentService(ctx, store).UpdateComment(id, param.Text)
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusCreated, comment)
}
