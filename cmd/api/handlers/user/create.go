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

func CreateUser(ctx context.Context, c *app.RequestContext) {
	var param CreateUserParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		handlers.SendErrResponse(c, err)
		return
	}

	user, err := service.NewCreateUserService(ctx, store).CreateUser(&service.CreateUserRequest{
		Username:       param.Username,
		Email:          param.Email,
		Password:       param.Password,
		Mobile:         param.Mobile,
		ProfilePicture: param.ProfilePicture,
		Bio:            param.Bio,
	})
	if err != nil {
		handlers.SendErrResponse(c, err)
		return
	}

	c.JSON(consts.StatusCreated, utils.H{
		"_id":            user.ID.Hex(),
		"username":       user.Username,
		"email":          user.Email,
		"profilePicture": user.ProfilePicture,
		"bio":            user.Bio,
		"createdAt":      user.CreatedAt,
	})
}
