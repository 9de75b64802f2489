package jwt

import (
	"context"
	"time"

	"ReelHub.com/cmd/model"
	"ReelHub.com/config"
	"ReelHub.com/pkg/constants"
	"ReelHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/hertz-contrib/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const IdentityKey = "user_id"

// loginUserKey carries the authenticated user from Authenticator to
// LoginResponse within one request.
const loginUserKey = "login_user"

var AuthMiddleware *jwt.HertzJWTMiddleware

type LoginParam struct {
	Email    string `json:"email,required"`
	Password string `json:"password,required"`
}

// Authenticate checks credentials and returns the matching user.
type Authenticate func(ctx context.Context, email, password string) (*model.User, error)

func Init(authenticate Authenticate) {
	var err error
	AuthMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "reelhub",
		Key:           []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:       constants.AccessTokenExpire,
		MaxRefresh:    constants.AccessTokenExpire,
		IdentityKey:   IdentityKey,
		TokenLookup:   "header: Authorization",
		TokenHeadName: "Bearer",
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var login LoginParam
			if err := c.BindAndValidate(&login); err != nil {
				return nil, jwt.ErrMissingLoginValues
			}
			user, err := authenticate(ctx, login.Email, login.Password)
			if err != nil {
				return nil, jwt.ErrFailedAuthentication
			}
			c.Set(loginUserKey, user)
			return user, nil
		},
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if user, ok := data.(*model.User); ok {
				return jwt.MapClaims{IdentityKey: user.ID.Hex()}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			id, _ := claims[IdentityKey].(string)
			return id
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			resp := utils.H{
				"message": "Login successful!",
				"token":   token,
			}
			if v, ok := c.Get(loginUserKey); ok {
				if user, ok := v.(*model.User); ok {
					resp["user"] = utils.H{
						"_id":            user.ID.Hex(),
						"username":       user.Username,
						"email":          user.Email,
						"profilePicture": user.ProfilePicture,
						"bio":            user.Bio,
					}
				}
			}
			c.JSON(code, resp)
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, utils.H{"message": message})
		},
	})
	if err != nil {
		hlog.Fatalf("jwt middleware init failed: %v", err)
	}
}

// GetUserId returns the authenticated user's id from the request identity.
func GetUserId(ctx context.Context, c *app.RequestContext) (primitive.ObjectID, error) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return primitive.NilObjectID, errno.AuthorizationFailed
	}
	hex, ok := v.(string)
	if !ok || hex == "" {
		return primitive.NilObjectID, errno.AuthorizationFailed
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, errno.AuthorizationFailed
	}
	return id, nil
}
