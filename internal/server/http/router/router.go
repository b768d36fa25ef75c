package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
	"github.com/polkiloo/storefront/internal/server/http/view"
)

type params struct {
	fx.In

	Facade   handlers.StorefrontFacade
	Logger   *slog.Logger
	Config   *config.Config
	Renderer view.Renderer `optional:"true"`
}

// Setup configures gin router with handlers and middleware.
func Setup(p params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	renderer := p.Renderer
	if renderer == nil {
		renderer = view.NewJSONRenderer()
	}
	cookie := middleware.SessionCookie{Secure: p.Config.CookieSecure, TTL: p.Config.SessionTTL}

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))
	if len(p.Config.CORSOrigins) > 0 {
		engine.Use(middleware.CORS(p.Config.CORSOrigins))
	}
	engine.Use(middleware.LoadSession(p.Facade, cookie, p.Logger))

	customerHandler := handlers.NewCustomerHandler(p.Facade, renderer, cookie, p.Logger)
	pageHandler := handlers.NewPageHandler(renderer)

	customer := engine.Group("/customer")
	customer.GET("/register", customerHandler.ShowRegister)
	customer.POST("/register", customerHandler.Register)
	customer.GET("/login", customerHandler.ShowLogin)
	customer.POST("/login", customerHandler.Login)
	customer.GET("/logout", customerHandler.Logout)
	customer.POST("/logout", customerHandler.Logout)
	customer.GET("/portal", customerHandler.Portal)
	customer.GET("/address/:username", customerHandler.ShowAddress)
	customer.POST("/address", customerHandler.UpdateAddress)

	engine.GET("/about", pageHandler.About)
	engine.GET("/contact", pageHandler.Contact)

	return engine
}
