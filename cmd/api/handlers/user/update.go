package user

import (
	"context"

	"ReelHub.com/cmd/api/handlers"
	"ReelHub.com/cmd/user/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func UpdateUser(ctx context.Context, c *app.RequestContext) {
	id, err := handlers.PathObjectID(c, "id")
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}
	var param UpdateUserParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendErrResponse(c, err)
		return
	}

	user, err := service.NewUpdateUserService(ctx, store).UpdateUser(&service.UpdateUserRequest{
		UserId:          id,
		Username:        param.Username,
		ProfilePicture:  param.ProfilePicture,
		Bio:             param.Bio,
		CurrentPassword: param.CurrentPassword,
		NewPassword:     param.NewPassword,
		IsSuspended:     param.IsSuspended,
	})
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, utils.H{
		"_id":            user.ID.Hex(),
		"username":       user.Username,
		"email":          user.Email,
		"profilePicture": user.ProfilePicture,
		"bio":            user.Bio,
		"isSuspended":    user.IsSuspended,
		"createdAt":      user.CreatedAt,
	})
}
