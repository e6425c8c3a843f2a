package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"portfolio-cms/pkg/config"
)

const sessionLoggedIn = "loggedIn"

// AuthRequired gates the admin surface on the session flag. API calls get a
// JSON 401, page routes redirect to the login page.
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	logged, _ := session.Get(sessionLoggedIn).(bool)
	if !logged {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		} else {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		}
		return
	}
	c.Next()
}

func LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":    "login",
		"message": "Enter your credentials to access the admin area",
	})
}

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Login checks the submitted pair against the demo credentials after an
// artificial delay. A match sets the session flag and lands on /admin; a
// mismatch changes nothing.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	time.Sleep(config.LoginDelay)

	if req.Username != config.AdminUsername || req.Password != config.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionLoggedIn, true)
	session.Save()

	c.Redirect(http.StatusFound, "/admin")
}

func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}
