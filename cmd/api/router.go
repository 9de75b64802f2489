package main

import (
	"ReelHub.com/cmd/api/handlers/comment"
	"ReelHub.com/cmd/api/handlers/music"
	"ReelHub.com/cmd/api/handlers/reel"
	"ReelHub.com/cmd/api/handlers/user"
	"ReelHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app/server"
)

func register(r *server.Hertz) {
	auth := jwt.AuthMiddleware.MiddlewareFunc()

	users := r.Group("/api/users")
	{
		users.POST("", user.CreateUser)
		users.POST("/login", jwt.AuthMiddleware.LoginHandler)
		users.GET("", auth, user.ListUsers)
		users.GET("/:id", user.GetUser)
		users.PUT("/:id", auth, user.UpdateUser)
		users.DELETE("/:id", auth, user.DeleteUser)
		users.PUT("/:id/follow", user.FollowUser)
		users.PUT("/:id/unfollow", user.UnfollowUser)
	}

	reels := r.Group("/api/reels", auth)
	{
		reels.POST("/upload", reel.UploadReel)
		reels.GET("", reel.ListReels)
		reels.GET("/show", reel.ShowFeed)
		reels.GET("/:id", reel.GetReel)
		reels.PUT("/update/:id", reel.UpdateReel)
		reels.DELETE("/delete/:id", reel.DeleteReel)
		reels.PUT("/like/:id", reel.LikeReel)
		reels.PUT("/:id/share", reel.ShareReel)
	}

	comments := r.Group("/api/comment", auth)
	{
		comments.POST("/new", comment.CreateComment)
		comments.GET("", comment.ListComments)
		comments.GET("/:id", comment.GetComment)
		comments.GET("/reel/:reelId", comment.ListReelComments)
		comments.PUT("/update/:id", comment.UpdateComment)
		comments.PUT("/like/:id", comment.LikeComment)
		comments.DELETE("/delete/:id", comment.DeleteComment)
	}

	tracks := r.Group("/api/music", auth)
	{
		tracks.POST("/new", music.CreateMusic)
		tracks.GET("", music.ListMusic)
		tracks.GET("/:id", music.GetMusic)
		tracks.DELETE("/delete/:id", music.DeleteMusic)
	}
}
