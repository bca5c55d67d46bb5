package controllers

import (
	"net/http"
	"strings"

	"Playhub/middleware"
	"Playhub/utils"
	"Playhub/utils/logger"

	"github.com/gin-gonic/gin"
)

// @Summary Landing page
// @Description Login and registration links for visitors, a redirect to the dashboard for signed-in players
// @Tags auth
// @Produce json
// @Success 200 {object} object{page=string,login_url=string,register_url=string,redirect=string}
// @Router / [get]
func Landing(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := middleware.SessionID(c); id != "" {
			if _, err := env.Gate.Session(id); err == nil {
				c.JSON(http.StatusOK, gin.H{"page": "landing", "redirect": "/auth/dashboard"})
				return
			}
		}
		view := middleware.Landing(env.Gate)
		delete(view, "error")
		c.JSON(http.StatusOK, view)
	}
}

// @Summary Signs a player in
// @Description Authenticates against the identity provider and opens a session cookie
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} object{player_id=string,username=string,redirect=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func Login(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		//Minimum input sanitizing
		if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		s, err := env.Gate.Login(c.Request.Context(), username, password)
		if err != nil {
			logger.Infof("[AUTH] login of %s refused: %v", username, err)
			utils.RespondError(c, err)
			return
		}

		if err := middleware.SaveSession(c, s.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No session!"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"player_id": s.PlayerID, "username": s.Username, "redirect": "/auth/dashboard"})
	}
}

// @Summary Registration page of the identity provider
// @Tags auth
// @Produce json
// @Success 200 {object} object{register_url=string}
// @Router /register [get]
func Register(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"register_url": env.Gate.RegisterURL()})
	}
}

// @Summary Signs the player out
// @Description Ends the gateway session and the identity provider session
// @Tags auth
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /auth/logout [delete]
// @Security ApiKeyAuth
func Logout(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := env.Gate.Logout(c.Request.Context(), middleware.SessionID(c)); err != nil {
			logger.Warnf("[AUTH] logout: %v", err)
		}
		if err := middleware.ClearSession(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
	}
}

// @Summary One-time ticket for the socket handshake
// @Description Put it in the "authorization" field of the socket.io auth data
// @Tags auth
// @Produce json
// @Success 200 {object} object{ticket=string}
// @Router /auth/socket-ticket [get]
// @Security ApiKeyAuth
func SocketTicket(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		ticket, err := env.Gate.IssueTicket(middleware.SessionID(c))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ticket": ticket})
	}
}
