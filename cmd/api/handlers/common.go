package handlers

import (
	"ReelHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SendErrResponse maps an error onto its HTTP status and the `{message}`
// body the frontend expects. Server faults keep a generic message; the full
// error goes to the local log only.
func SendErrResponse(c *app.RequestContext, err error) {
	e := errno.ConvertErr(err)
	status := e.StatusCode()
	if status == 500 {
		hlog.Errorf("request failed: %v", err)
		e.ErrMsg = "Server error"
	}
	c.JSON(status, utils.H{"message": e.ErrMsg})
}

// PathObjectID parses a hex document id out of a path parameter.
func PathObjectID(c *app.RequestContext, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, errno.RequestErr.WithMessage("Invalid id")
	}
	return id, nil
}
