package user

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/user/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func DeleteUser(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	if err := service.NewDeleteUserService(ctx, store).DeleteUser(id); err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	c.JSON(consts.StatusOK, utils.H{"message": "User deleted successfully"})
}
