package main

import (
	dashboardhandler "VidTube.com/cmd/api/handlers/dashboard"
	healthhandler "VidTube.com/cmd/api/handlers/health"
	interactionhandler "VidTube.com/cmd/api/handlers/interaction"
	playlisthandler "VidTube.com/cmd/api/handlers/playlist"
	relationhandler "VidTube.com/cmd/api/handlers/relation"
	tweethandler "VidTube.com/cmd/api/handlers/tweet"
	userhandler "VidTube.com/cmd/api/handlers/user"
	videohandler "VidTube.com/cmd/api/handlers/video"
	"VidTube.com/cmd/api/router/authfunc"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func register(r *server.Hertz) {
	v1 := r.Group("/api/v1")

	v1.GET("/healthcheck", healthhandler.HealthCheck)

	users := v1.Group("/users")
	{
		users.POST("/register", userhandler.RegisterUser)
		users.POST("/login", userhandler.LoginUser)
		users.POST("/refresh-token", userhandler.RefreshAccessToken)

		authed := users.Group("", authfunc.Auth()...)
		authed.POST("/logout", userhandler.LogoutUser)
		authed.POST("/change-password", userhandler.ChangePassword)
		authed.GET("/current-user", userhandler.GetCurrentUser)
		authed.PATCH("/update-account", userhandler.UpdateAccount)
		authed.PATCH("/avatar", userhandler.UpdateAvatar)
		authed.PATCH("/cover-image", userhandler.UpdateCoverImage)
		authed.GET("/c/:username", userhandler.GetChannelProfile)
		authed.GET("/history", userhandler.GetWatchHistory)
	}

	videos := v1.Group("/videos", authfunc.Auth()...)
	{
		videos.GET("", videohandler.ListVideos)
		videos.POST("", videohandler.UploadVideo)
		videos.GET("/:videoId", videohandler.GetVideoById)
		videos.PATCH("/:videoId", videohandler.UpdateVideo)
		videos.DELETE("/:videoId", videohandler.DeleteVideo)
		videos.PATCH("/toggle/publish/:videoId", videohandler.TogglePublishStatus)
	}

	comments := v1.Group("/comments", authfunc.Auth()...)
	{
		comments.GET("/:videoId", interactionhandler.ListComments)
		comments.POST("/:videoId", interactionhandler.AddComment)
		comments.PATCH("/c/:commentId", interactionhandler.UpdateComment)
		comments.DELETE("/c/:commentId", interactionhandler.DeleteComment)
	}

	likes := v1.Group("/likes", authfunc.Auth()...)
	{
		likes.POST("/toggle/v/:videoId", interactionhandler.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", interactionhandler.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", interactionhandler.ToggleTweetLike)
		likes.GET("/videos", interactionhandler.GetLikedVideos)
	}

	playlists := v1.Group("/playlist", authfunc.Auth()...)
	{
		playlists.POST("", playlisthandler.CreatePlaylist)
		playlists.GET("/:playlistId", playlisthandler.GetPlaylistById)
		playlists.PATCH("/:playlistId", playlisthandler.UpdatePlaylist)
		playlists.DELETE("/:playlistId", playlisthandler.DeletePlaylist)
		playlists.PATCH("/add/:videoId/:playlistId", playlisthandler.AddVideoToPlaylist)
		playlists.PATCH("/remove/:videoId/:playlistId", playlisthandler.RemoveVideoFromPlaylist)
		playlists.GET("/user/:userId", playlisthandler.GetUserPlaylists)
	}

	subscriptions := v1.Group("/subscriptions", authfunc.Auth()...)
	{
		subscriptions.POST("/c/:channelId", relationhandler.ToggleSubscription)
		subscriptions.GET("/c/:channelId", relationhandler.GetChannelSubscribers)
		subscriptions.GET("/u/:subscriberId", relationhandler.GetSubscribedChannels)
	}

	tweets := v1.Group("/tweets", authfunc.Auth()...)
	{
		tweets.POST("", tweethandler.CreateTweet)
		tweets.GET("/user/:userId", tweethandler.GetUserTweets)
		tweets.PATCH("/:tweetId", tweethandler.UpdateTweet)
		tweets.DELETE("/:tweetId", tweethandler.DeleteTweet)
	}

	dashboard := v1.Group("/dashboard", authfunc.Auth()...)
	{
		dashboard.GET("/stats", dashboardhandler.GetChannelStats)
		dashboard.GET("/videos", dashboardhandler.GetChannelVideos)
	}
}
