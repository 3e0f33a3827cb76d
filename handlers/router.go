package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"gostore/auth"
	"gostore/catalog"
	"gostore/config"
	"gostore/middleware"
)

// NewRouter builds the gin engine: templates, cookie sessions and
// the full route table.
func NewRouter(cfg config.Config, store *catalog.Store, creds auth.Verifier, log zerolog.Logger, templateGlob string) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(templateGlob)

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions(cfg.SessionName, sessionStore))

	h := New(store, creds, log)

	r.GET("/health-check", h.CheckConnection)

	// Public storefront routes
	r.GET("/", h.Index)
	r.GET("/add_to_cart/:id", h.AddToCart)
	r.GET("/cart", h.Cart)
	r.GET("/update_quantity/:id/:action", h.UpdateQuantity)
	r.GET("/remove_from_cart/:id", h.RemoveFromCart)
	r.GET("/checkout", h.CheckoutForm)
	r.POST("/checkout", h.CheckoutSubmit)

	// Admin login is reachable without the session flag
	r.GET("/admin/login", h.AdminLoginForm)
	r.POST("/admin/login", h.AdminLogin)
	r.GET("/admin/logout", h.AdminLogout)

	// Guarded admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/add_product", h.AddProductForm)
		admin.POST("/add_product", h.AddProduct)
		admin.GET("/manage_products", h.ManageProducts)
		admin.GET("/delete_product/:id", h.DeleteProduct)
	}

	return r
}
