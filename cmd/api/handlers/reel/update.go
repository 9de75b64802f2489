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

func UpdateReel(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	var param UpdateReelParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendErrResponse(c, err)
		return
	}
	musicId := primitive.NilObjectID
	if param.Music != "" {
		if musicId, err = primitive.ObjectIDFromHex(param.Music); err != nil {
			handlers.SendErrResponse(c, errno.RequestErr.WithMessage("Invalid music id"))
			return
		}
	}

	reel, err := service.NewUpdateReelService(ctx, store, recorder).UpdateReel(&service.UpdateReelRequest{
		ReelId:       id,
		VideoUrl:     param.VideoUrl,
		ThumbnailUrl: param.ThumbnailUrl,
		Caption:      param.Caption,
		Duration:     param.Duration,
		MusicId:      musicId,
		Client:       utils.GetClientInfo(c),
	})
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, hutils.H{
		"_id":          reel.ID.Hex(),
		"videoUrl":     reel.VideoUrl,
		"thumbnailUrl": reel.ThumbnailUrl,
		"caption":      reel.Caption,
		"duration":     reel.Duration,
		"music":        reel.MusicId,
	})
}
