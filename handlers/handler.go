// Package handlers contains the HTTP handlers for the storefront
// and the admin panel.
package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"gostore/auth"
	"gostore/catalog"
	"gostore/models"
)

// SessionKeyCart is the session key holding the shopping cart.
const SessionKeyCart = "cart"

// Handler carries the dependencies shared by all routes.
type Handler struct {
	store *catalog.Store
	creds auth.Verifier
	log   zerolog.Logger
}

// New creates a Handler.
func New(store *catalog.Store, creds auth.Verifier, log zerolog.Logger) *Handler {
	return &Handler{store: store, creds: creds, log: log}
}

// currentCart reads the cart out of the session. A missing or
// malformed value yields an empty cart.
func currentCart(c *gin.Context) models.Cart {
	session := sessions.Default(c)
	if v := session.Get(SessionKeyCart); v != nil {
		if cart, ok := v.(models.Cart); ok {
			return cart
		}
	}
	return models.Cart{}
}

// saveCart writes the cart back into the session.
func (h *Handler) saveCart(c *gin.Context, cart models.Cart) {
	session := sessions.Default(c)
	session.Set(SessionKeyCart, cart)
	if err := session.Save(); err != nil {
		h.log.Error().Err(err).Msg("failed to save session")
	}
}

// serverError logs a storage failure and renders the generic error
// page.
func (h *Handler) serverError(c *gin.Context, err error, msg string) {
	h.log.Error().Err(err).Msg(msg)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
}
