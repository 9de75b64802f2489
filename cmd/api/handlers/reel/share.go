package reel

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/reel/service"
	"ReelHub.com/pkg/errno"
	"ReelHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ShareReel(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	var param ShareReelParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendErrResponse(c, errno.RequestErr.WithMessage("Missing sharedBy or sharedTo"))
		return
	}
	sharedBy, err := primitive.ObjectIDFromHex(param.SharedBy)
	if err != nil {
		handlers.SendErrResponse(c, errno.RequestErr.WithMessage("Missing sharedBy or sharedTo"))
		return
	}
	sharedTo, err := primitive.ObjectIDFromHex(param.SharedTo)
	if err != nil {
		handlers.SendErrResponse(c, errno.RequestErr.WithMessage("Missing sharedBy or sharedTo"))
		return
	}

	err = service.NewShareReelService(ctx, store, recorder).ShareReel(&service.ShareReelRequest{
		ReelId:   id,
		SharedBy: sharedBy,
		SharedTo: sharedTo,
		Client:   utils.GetClientInfo(c),
	})
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, hutils.H{"message": "Reel shared successfully"})
}
