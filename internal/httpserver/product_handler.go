package httpserver

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"goshop/internal/product"

	"github.com/gin-gonic/gin"
)

func (h *handler) listProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context(), product.ListOptions{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *handler) createProduct(c *gin.Context) {
	name := c.PostForm("name")
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	stock, _ := strconv.Atoi(c.PostForm("stock"))
	category := c.PostForm("category")

	file, err := c.FormFile("image")
	if err != nil {
		writeError(c, product.ErrImageRequired)
		return
	}

	// Timestamped filename so repeated uploads never collide.
	filename := fmt.Sprintf("%d-%s", time.Now().Unix(), filepath.Base(file.Filename))
	dest := filepath.Join(h.cfg.UploadDir, filename)

	if err := c.SaveUploadedFile(file, dest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	imageURL := h.cfg.PublicBaseURL + "/uploads/" + filename

	created, err := h.products.Create(c.Request.Context(), product.CreateProductParams{
		Name:     name,
		Price:    price,
		Category: category,
		Stock:    stock,
		ImageURL: imageURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": created})
}

func (h *handler) deleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.products.Delete(c.Request.Context(), uint(id)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
