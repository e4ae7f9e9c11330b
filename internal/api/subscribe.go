package api

import (
	"errors"
	"net/http" // HTTP status codes

	"nanotify/internal/middleware" // Request identity
	"nanotify/internal/service"    // Business services

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// msgInvalidAccount is shown inline when a submitted address fails
// format validation.
const msgInvalidAccount = "Add an account in the correct format"

// renderSubscriptions renders the subscribe page with the caller's
// current list and an optional inline error.
func renderSubscriptions(c *gin.Context, subs *service.SubscriptionService, email, errMsg string) {
	list, err := subs.ListFor(c.Request.Context(), email)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"email": email,       // Owner
			"error": err.Error(), // Error message
		}).Error("Listing subscriptions failed")
		renderErrorPage(c)
		return
	}
	c.HTML(http.StatusOK, "subscribe.html", gin.H{
		"Subscriptions": list,   // Current watch list, insertion order
		"Error":         errMsg, // Optional inline error
	})
}

// GetSubscribeHandler renders the caller's subscription list
func GetSubscribeHandler(subs *service.SubscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderSubscriptions(c, subs, middleware.Identity(c).Email, "")
	}
}

// SubscribeHandler handles the dual-purpose subscribe form: action
// "delete" unsubscribes, anything else subscribes
func SubscribeHandler(subs *service.SubscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.Identity(c).Email // Session owner
		account := c.PostForm("account")      // Target address
		action := c.PostForm("action")        // "delete" or add

		err := subs.SubscribeOrUnsubscribe(c.Request.Context(), email, account, action)
		if errors.Is(err, service.ErrInvalidAddress) {
			renderSubscriptions(c, subs, email, msgInvalidAccount)
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email":   email,       // Owner
				"account": account,     // Target address
				"action":  action,      // Requested action
				"error":   err.Error(), // Error message
			}).Error("Subscription update failed")
			renderErrorPage(c)
			return
		}
		renderSubscriptions(c, subs, email, "")
	}
}

// MobileSubscribeRequest is the JSON body of the mobile endpoint
type MobileSubscribeRequest struct {
	Account string `json:"account"` // Address to watch
}

// MobileSubscribeHandler creates an ownerless global subscription
func MobileSubscribeHandler(subs *service.SubscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MobileSubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		err := subs.MobileAdd(c.Request.Context(), req.Account)
		switch {
		case errors.Is(err, service.ErrInvalidAddress):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidAccount})
		case errors.Is(err, service.ErrAlreadySubscribed):
			c.JSON(http.StatusConflict, gin.H{"error": "Account already subscribed"})
		case err != nil:
			logrus.WithFields(logrus.Fields{
				"account": req.Account, // Target address
				"error":   err.Error(), // Error message
			}).Error("Mobile subscribe failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Subscription failed"})
		default:
			c.JSON(http.StatusCreated, gin.H{"account": req.Account})
		}
	}
}
