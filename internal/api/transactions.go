package api

import (
	"errors"
	"net/http" // HTTP status codes

	"nanotify/internal/node" // Nano node RPC client

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// TransactionsHandler proxies an account history query to the local node
// and returns the history entries as a bare JSON array
func TransactionsHandler(client *node.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := c.Param("account") // Address from the path

		history, err := client.AccountHistory(c.Request.Context(), account)
		switch {
		case errors.Is(err, node.ErrInvalidAddress):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account format"})
		case errors.Is(err, node.ErrUnavailable):
			logrus.WithFields(logrus.Fields{
				"account": account,     // Queried address
				"error":   err.Error(), // Error message
			}).Error("Node history query failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ledger node unavailable"})
		case err != nil:
			logrus.WithFields(logrus.Fields{
				"account": account,     // Queried address
				"error":   err.Error(), // Error message
			}).Error("Transaction history failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction history failed"})
		default:
			c.JSON(http.StatusOK, history)
		}
	}
}
