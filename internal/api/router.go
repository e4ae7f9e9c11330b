package api

import (
	"net/http" // HTTP status codes

	"nanotify/internal/middleware" // Session middleware
	"nanotify/internal/node"       // Nano node RPC client
	"nanotify/internal/service"    // Business services
	"nanotify/internal/session"    // Session store
	"nanotify/internal/web"        // Embedded templates and static files

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps carries everything the router needs. All dependencies are
// constructed in main and passed by reference; nothing is global.
type Deps struct {
	Auth             *service.AuthService         // Registration and credential checks
	Subscriptions    *service.SubscriptionService // Watch list management
	Settings         *service.SettingsService     // Webhook settings
	Sessions         *session.Store               // Redis-backed sessions
	Node             *node.Client                 // Ledger node proxy
	RecaptchaEnabled bool                         // Whether the register page renders a CAPTCHA
}

// NewRouter builds the gin engine with all routes wired.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())  // Access log and panic recovery
	r.SetHTMLTemplate(web.Templates())   // Embedded page templates
	r.Use(middleware.Session(d.Sessions)) // Resolve session cookie into an identity

	// Public routes
	r.GET("/", GetLoginHandler())
	r.POST("/", LoginHandler(d.Auth, d.Sessions))
	r.GET("/register", GetRegisterHandler(d.RecaptchaEnabled))
	r.POST("/register", RegisterHandler(d.Auth, d.RecaptchaEnabled))
	r.GET("/transactions/:account", TransactionsHandler(d.Node))
	r.POST("/mobile/subscribe", MobileSubscribeHandler(d.Subscriptions))
	r.GET("/robots.txt", StaticHandler("robots.txt", "text/plain; charset=utf-8"))
	r.GET("/sitemap.xml", StaticHandler("sitemap.xml", "application/xml; charset=utf-8"))

	// Routes requiring a live session; anonymous callers are redirected home
	authed := r.Group("/", middleware.RequireAuth())
	authed.GET("/logout", LogoutHandler(d.Sessions))
	authed.GET("/subscribe", GetSubscribeHandler(d.Subscriptions))
	authed.POST("/subscribe", SubscribeHandler(d.Subscriptions))
	authed.GET("/settings", GetSettingsHandler(d.Settings))
	authed.POST("/settings", SettingsHandler(d.Settings))

	return r
}

// renderErrorPage logs nothing itself; callers log the failure with full
// detail and the user only ever sees the generic page.
func renderErrorPage(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
}
