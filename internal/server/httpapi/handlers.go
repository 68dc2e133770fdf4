package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/loginkeeper/internal/common"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, "API online")
}

func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "could not create user"})
		return
	}

	ctx := c.Request.Context()
	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrDuplicateUser):
			// One answer for both causes so the endpoint cannot be used to
			// probe which usernames exist.
			s.logger.Info(ctx, "registration rejected", "reason", err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"message": "could not create user"})
		default:
			s.logger.Error(ctx, "registration failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		}
		return
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "user created"})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid username or password"})
		return
	}

	ctx := c.Request.Context()
	user, err := s.users.Verify(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrInvalidCredentials):
			s.logger.Info(ctx, "login rejected", "username", req.Username, "reason", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid username or password"})
		default:
			s.logger.Error(ctx, "login failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		}
		return
	}

	token, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		s.logger.Error(ctx, "token issuance failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	http.SetCookie(c.Writer, s.issuer.SessionCookie(token))

	s.logger.Info(ctx, "login successful", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	// Stateless tokens cannot be revoked server-side; clearing the cookie
	// is the whole operation.
	http.SetCookie(c.Writer, s.issuer.ExpiredCookie())
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (s *Server) handleMe(c *gin.Context) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
		},
	})
}
