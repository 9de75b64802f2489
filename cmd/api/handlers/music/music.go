package music

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/music/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hutils "github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func CreateMusic(ctx context.Context, c *app.RequestContext) {
	var param CreateMusicParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendErrResponse(c, err)
		return
	}

	track, err := service.NewMusicService(ctx, store).CreateMusic(&service.CreateMusicRequest{
		Title:    param.Title,
		Artist:   param.Artist,
		Url:      param.Url,
		Duration: param.Duration,
	})
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusCreated, track)
}

func GetMusic(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	track, err := service.NewMusicService(ctx, store).GetMusic(id)
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, track)
}

func ListMusic(ctx context.Context, c *app.RequestContext) {
	tracks, err := service.NewMusicService(ctx, store).ListMusic()
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, tracks)
}

func DeleteMusic(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	if err := service.NewMusicService(ctx, store).DeleteMusic(id); err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, hutils.H{"message": "Music Deleted Successfully!"})
}
