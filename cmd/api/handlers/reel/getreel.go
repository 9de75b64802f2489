package reel

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/reel/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func GetReel(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	reel, err := service.NewReelInfoService(ctx, store).GetReel(id)
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, reel)
}

func ListReels(ctx context.Context, c *app.RequestContext) {
	reels, err := service.NewReelInfoService(ctx, store).ListReels()
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, reels)
}
