package comment

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/interaction/service"
	"github.com/cloudwego/hertz/pkg/app"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// DeleteComment removes a comment and its direct replies.
func DeleteComment(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	if err := service.NewCommentService(ctx, store).DeleteComment(id); err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, hutils.H{"message": "Comment Deleted Successfully!"})
}
