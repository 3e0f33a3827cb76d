package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"gostore/catalog"
	"gostore/middleware"
)

// AdminLoginForm displays the admin login page.
func (h *Handler) AdminLoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{"Error": ""})
}

// AdminLogin checks the submitted credentials. Success sets the
// session flag and redirects to product management; failure
// re-renders the login page with an error message.
func (h *Handler) AdminLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if !h.creds.Verify(username, password) {
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"Error": "Invalid credentials",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionKeyAdmin, true)
	if err := session.Save(); err != nil {
		h.log.Error().Err(err).Msg("failed to save session")
	}

	c.Redirect(http.StatusFound, "/admin/manage_products")
}

// AdminLogout clears the session flag and redirects to the login
// page.
func (h *Handler) AdminLogout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionKeyAdmin)
	if err := session.Save(); err != nil {
		h.log.Error().Err(err).Msg("failed to save session")
	}

	c.Redirect(http.StatusFound, "/admin/login")
}

// AddProductForm displays the add-product page.
func (h *Handler) AddProductForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_product.html", gin.H{"Error": ""})
}

// AddProduct parses the submitted product fields and inserts the
// product. Malformed numeric input re-renders the form with an
// error instead of failing the request.
func (h *Handler) AddProduct(c *gin.Context) {
	name := c.PostForm("name")

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.HTML(http.StatusBadRequest, "add_product.html", gin.H{
			"Error": "Price must be a number",
		})
		return
	}

	stock, err := strconv.Atoi(c.PostForm("stock"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "add_product.html", gin.H{
			"Error": "Stock must be a whole number",
		})
		return
	}

	if _, err := h.store.InsertProduct(name, price, stock); err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			c.HTML(http.StatusBadRequest, "add_product.html", gin.H{
				"Error": verr.Error(),
			})
			return
		}
		h.serverError(c, err, "failed to create product")
		return
	}

	c.Redirect(http.StatusFound, "/admin/manage_products")
}

// ManageProducts displays the product management list.
func (h *Handler) ManageProducts(c *gin.Context) {
	products, err := h.store.ListProducts()
	if err != nil {
		h.serverError(c, err, "failed to fetch products")
		return
	}
	c.HTML(http.StatusOK, "manage_products.html", gin.H{"Products": products})
}

// DeleteProduct removes a product and redirects to the management
// list whether or not a row was deleted.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/manage_products")
		return
	}

	if err := h.store.DeleteProduct(id); err != nil {
		h.serverError(c, err, "failed to delete product")
		return
	}

	c.Redirect(http.StatusFound, "/admin/manage_products")
}
