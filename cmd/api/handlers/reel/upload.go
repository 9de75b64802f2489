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

func UploadReel(ctx context.Context, c *app.RequestContext) {
	var param UploadReelParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendErrResponse(c, err)
		return
	}
	userId, err := primitive.ObjectIDFromHex(param.User)
	if err != nil {
		handlers.SendErrResponse(c, errno.RequestErr.WithMessage("User ID or Video Url missing!"))
		return
	}
	musicId := primitive.NilObjectID
	if param.Music != "" {
		if musicId, err = primitive.ObjectIDFromHex(param.Music); err != nil {
			handlers.SendErrResponse(c, errno.RequestErr.WithMessage("Invalid music id"))
			return
		}
	}

	reel, err := service.NewUploadReelService(ctx, store, cache, recorder).UploadReel(&service.UploadReelRequest{
		UserId:       userId,
		VideoUrl:     param.VideoUrl,
		ThumbnailUrl: param.ThumbnailUrl,
		Caption:      param.Caption,
		Duration:     param.Duration,
		MusicId:      musicId,
		Status:       param.Status,
		Client:       utils.GetClientInfo(c),
	})
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	c.JSON(consts.StatusCreated, hutils.H{
		"message": "Reels Saved Successfully",
		"data": hutils.H{
			"id":        reel.ID.Hex(),
			"savedReel": reel,
		},
	})
}
