package comment

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/interaction/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func GetComment(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	comment, err := service.NewCommentService(ctx, store).GetComment(id)
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, comment)
}
