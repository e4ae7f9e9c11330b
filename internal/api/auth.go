package api

import (
	"errors"
	"net/http" // HTTP status codes

	"nanotify/internal/service" // Business services
	"nanotify/internal/session" // Session store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Form error messages shown inline on the originating page.
const (
	msgInvalidCredentials = "Invalid email or password"
	msgInvalidInput       = "Enter a valid email and password"
	msgShortPassword      = "Password must be more than 8 characters"
	msgEmailTaken         = "Account already exists"
	msgRecaptchaFailed    = "reCAPTCHA verification failed"
)

// GetLoginHandler renders the login page
func GetLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{})
	}
}

// LoginHandler authenticates the submitted credentials and opens a session
func LoginHandler(auth *service.AuthService, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")       // Submitted email
		password := c.PostForm("password") // Submitted password

		canonical, err := auth.Authenticate(c.Request.Context(), email, password)
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Deliberately generic: do not reveal which field was wrong
			c.HTML(http.StatusOK, "index.html", gin.H{"Error": msgInvalidCredentials, "Email": email})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email": email,       // Attempted identity
				"error": err.Error(), // Error message
			}).Error("Login failed")
			renderErrorPage(c)
			return
		}

		token, err := sessions.Create(c.Request.Context(), canonical)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email": canonical,   // Authenticated identity
				"error": err.Error(), // Error message
			}).Error("Session creation failed")
			renderErrorPage(c)
			return
		}
		c.SetCookie(session.CookieName, token, int(session.IdleTimeout.Seconds()), "/", "", false, true)
		c.Redirect(http.StatusFound, "/subscribe")
	}
}

// GetRegisterHandler renders the registration page
func GetRegisterHandler(recaptchaEnabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{"RecaptchaEnabled": recaptchaEnabled})
	}
}

// RegisterHandler creates a new account from the registration form
func RegisterHandler(auth *service.AuthService, recaptchaEnabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")                          // Submitted email
		password := c.PostForm("password")                    // Submitted password
		recaptchaResponse := c.PostForm("g-recaptcha-response") // CAPTCHA response token

		err := auth.Register(c.Request.Context(), email, password, recaptchaResponse)
		if err == nil {
			c.Redirect(http.StatusFound, "/")
			return
		}

		var msg string
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			msg = msgInvalidInput
		case errors.Is(err, service.ErrWeakPassword):
			msg = msgShortPassword
		case errors.Is(err, service.ErrEmailTaken):
			msg = msgEmailTaken
		case errors.Is(err, service.ErrRecaptchaFailed):
			msg = msgRecaptchaFailed
		default:
			logrus.WithFields(logrus.Fields{
				"email": email,       // Attempted identity
				"error": err.Error(), // Error message
			}).Error("Registration failed")
			renderErrorPage(c)
			return
		}
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Error":            msg,
			"Email":            email,
			"RecaptchaEnabled": recaptchaEnabled,
		})
	}
}

// LogoutHandler ends the session and clears the cookie; idempotent
func LogoutHandler(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(session.CookieName); err == nil {
			if err := sessions.Destroy(c.Request.Context(), token); err != nil {
				logrus.WithField("error", err.Error()).Error("Session destroy failed")
			}
		}
		c.SetCookie(session.CookieName, "", -1, "/", "", false, true) // Expire the cookie
		c.Redirect(http.StatusFound, "/")
	}
}
