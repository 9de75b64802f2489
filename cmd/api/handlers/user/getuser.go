package user

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/user/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func GetUser(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	user, err := service.NewGetUserService(ctx, store).GetUser(id)
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, user)
}

func ListUsers(ctx context.Context, c *app.RequestContext) {
	users, err := service.NewGetUserService(ctx, store).ListUsers()
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, users)
}
