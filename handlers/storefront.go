package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"gostore/catalog"
)

// Index displays all products.
func (h *Handler) Index(c *gin.Context) {
	products, err := h.store.ListProducts()
	if err != nil {
		h.serverError(c, err, "failed to fetch products")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Products": products})
}

// AddToCart puts a product into the session cart and redirects to
// the cart view. An unknown product id redirects back to the product
// list without touching the cart.
func (h *Handler) AddToCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	product, err := h.store.GetProduct(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.serverError(c, err, "failed to fetch product")
		return
	}

	cart := currentCart(c)
	cart.Add(product)
	h.saveCart(c, cart)

	c.Redirect(http.StatusFound, "/cart")
}

// Cart displays the session cart and its total.
func (h *Handler) Cart(c *gin.Context) {
	cart := currentCart(c)
	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Items": cart.Items,
		"Total": cart.Total(),
	})
}

// UpdateQuantity increases or decreases an item's quantity and
// redirects to the cart view.
func (h *Handler) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	cart := currentCart(c)
	cart.ChangeQuantity(id, c.Param("action"))
	h.saveCart(c, cart)

	c.Redirect(http.StatusFound, "/cart")
}

// RemoveFromCart drops an item from the session cart and redirects
// to the cart view.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/cart")
		return
	}

	cart := currentCart(c)
	cart.Remove(id)
	h.saveCart(c, cart)

	c.Redirect(http.StatusFound, "/cart")
}

// CheckoutForm displays the checkout page with the current cart
// total.
func (h *Handler) CheckoutForm(c *gin.Context) {
	cart := currentCart(c)
	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Total":       cart.Total(),
		"PaymentType": "",
	})
}

// CheckoutSubmit clears the cart and renders the confirmation. The
// total is taken from the submitted form, matching the page the
// checkout form renders it into.
func (h *Handler) CheckoutSubmit(c *gin.Context) {
	paymentType := c.PostForm("payment_type")
	total, err := strconv.ParseFloat(c.PostForm("total"), 64)
	if err != nil {
		total = 0
	}

	session := sessions.Default(c)
	session.Delete(SessionKeyCart)
	if err := session.Save(); err != nil {
		h.log.Error().Err(err).Msg("failed to save session")
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Total":       total,
		"PaymentType": paymentType,
	})
}
