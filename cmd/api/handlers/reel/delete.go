package reel

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/reel/service"
	"ReelHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func DeleteReel(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	err = service.NewDeleteReelService(ctx, store, cache, recorder).DeleteReel(&service.DeleteReelRequest{
		ReelId: id,
		Client: utils.GetClientInfo(c),
	})
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, hutils.H{"message": "Video Deleted Successfully!"})
}
