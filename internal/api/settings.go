package api

import (
	"errors"
	"net/http" // HTTP status codes

	"nanotify/internal/middleware" // Request identity
	"nanotify/internal/service"    // Business services

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// msgInvalidWebhook is shown inline when a submitted webhook URL fails
// format validation.
const msgInvalidWebhook = "Webhook is invalid"

// renderSettings renders the settings page with the stored webhook and an
// optional inline error.
func renderSettings(c *gin.Context, settings *service.SettingsService, email, errMsg string) {
	webhook, err := settings.GetWebhook(c.Request.Context(), email)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"email": email,       // Owner
			"error": err.Error(), // Error message
		}).Error("Loading settings failed")
		renderErrorPage(c)
		return
	}
	c.HTML(http.StatusOK, "settings.html", gin.H{
		"Webhook": webhook, // Stored webhook, empty if none
		"Error":   errMsg,  // Optional inline error
	})
}

// GetSettingsHandler renders the caller's settings
func GetSettingsHandler(settings *service.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderSettings(c, settings, middleware.Identity(c).Email, "")
	}
}

// SettingsHandler updates the caller's webhook. An invalid URL is rejected
// and the previously stored value is retained
func SettingsHandler(settings *service.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.Identity(c).Email // Session owner
		webhook := c.PostForm("webhook")      // Submitted webhook URL

		err := settings.SetWebhook(c.Request.Context(), email, webhook)
		if errors.Is(err, service.ErrInvalidWebhook) {
			renderSettings(c, settings, email, msgInvalidWebhook)
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email":   email,       // Owner
				"webhook": webhook,     // Submitted value
				"error":   err.Error(), // Error message
			}).Error("Saving webhook failed")
			renderErrorPage(c)
			return
		}
		renderSettings(c, settings, email, "")
	}
}
