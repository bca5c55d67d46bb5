package routes

import (
	platform "Playhub/constants/platform"
	"Playhub/controllers"
	"Playhub/middleware"
	utils "Playhub/utils"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures every page route
func SetupRoutes(router *gin.Engine, env *controllers.Env) {
	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.GET("/", controllers.Landing(env))

	api.POST("/login", controllers.Login(env))

	api.GET("/register", controllers.Register(env))

	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired(env.Gate))
	{
		authentication.DELETE("/logout", controllers.Logout(env))

		authentication.GET("/socket-ticket", controllers.SocketTicket(env))

		authentication.GET("/dashboard", controllers.Dashboard(env))

		authentication.GET("/profile", controllers.Profile(env))

		authentication.GET("/achievements", controllers.Achievements(env))

		friends := authentication.Group("/friends")
		{
			friends.GET("", controllers.ListFriends(env))
			friends.POST("/:friendId", controllers.AddFriend(env))
			friends.POST("/:friendId/remove", controllers.RemoveFriend(env))
		}

		games := authentication.Group("/games/:gameId")
		{
			games.GET("", controllers.GetGame(env))
			games.POST("/favorite", controllers.ToggleFavorite(env))
			games.GET("/stats", controllers.GameStats(env))
			games.GET("/play", controllers.PlaySession(env))
			games.POST("/ai", controllers.CreateAISession(env))
			games.POST("/lobby", controllers.JoinLobby(env))
			games.GET("/lobby", controllers.LobbyPoll(env))
			games.DELETE("/lobby", controllers.LeaveLobby(env))
		}

		invitations := authentication.Group("/invitations")
		{
			invitations.POST("", controllers.CreateInvitation(env))
			invitations.GET("", controllers.ListInvitations(env))
			invitations.GET("/:id", controllers.GetInvitation(env))
			invitations.POST("/:id/accept", controllers.AcceptInvitation(env))
			invitations.POST("/:id/reject", controllers.RejectInvitation(env))
		}

		notifications := authentication.Group("/notifications")
		{
			notifications.GET("", controllers.ListNotifications(env))
			notifications.POST("/:id/read", controllers.MarkNotificationRead(env))
		}

		assistant := authentication.Group("/assistant/messages")
		{
			assistant.POST("", controllers.SendAssistantMessage(env))
			assistant.GET("", controllers.AssistantHistory(env))
			assistant.DELETE("", controllers.ResetAssistant(env))
		}

		admin := authentication.Group("/admin")
		admin.Use(middleware.RequireRole(platform.ADMIN_ROLE))
		{
			admin.GET("/players", controllers.AdminListPlayers(env))
			admin.GET("/games", controllers.AdminListGames(env))
			admin.POST("/games", controllers.AdminCreateGame(env))
			admin.POST("/achievements", controllers.AdminCreateAchievement(env))
		}
	}
}
