package comment

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/interaction/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func ListComments(ctx context.Context, c *app.RequestContext) {
	comments, err := service.NewCommentService(ctx, store).ListComments()
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, comments)
}

// ListReelComments returns a reel's top-level comments with one level of
// replies.
func ListReelComments(ctx context.Context, c *app.RequestContext) {
	reelId, err := handlers.PathObjectID(c, "reelId")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	tree, err := service.NewCommentTreeService(ctx, store).ListReelComments(reelId)
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, tree)
}
