package reel

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/reel/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ShowFeed serves the randomized feed page. Bad or missing paging values
// fall back to the defaults rather than erroring.
func ShowFeed(ctx context.Context, c *app.RequestContext) {
	var param FeedParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
	}

	feed, err := service.NewFeedListService(ctx, store, cache).FeedList(param.Page, param.Limit)
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, feed)
}
