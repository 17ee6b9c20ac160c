package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/febdev/feb_shop/internal/logging"
	"github.com/febdev/feb_shop/internal/models"
	"github.com/febdev/feb_shop/internal/mykafka"
	"github.com/febdev/feb_shop/internal/transport"
)

type ProductHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

func errorJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"error": msg})
}

func productNotFound(c echo.Context, id int) error {
	return errorJSON(c, http.StatusNotFound, fmt.Sprintf("Product with id %d doesn't exist", id))
}

func (h *ProductHandler) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "error", err)
	}
}

func productEvent(eventType string, p models.Product) map[string]any {
	return map[string]any{
		"type":        eventType,
		"productID":   p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"stock":       p.Stock,
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	var items []models.Product
	if err := h.DB.WithContext(ctx).Find(&items).Error; err != nil {
		l.Error("get_products_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot load products")
	}

	return c.JSON(http.StatusOK, transport.FromProducts(items))
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "id is not an integer")
		return errorJSON(c, http.StatusBadRequest, "id is not an integer")
	}

	var product models.Product
	if err := h.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_product_failed", "status", 404, "product_id", id)
			return productNotFound(c, id)
		}
		l.Error("get_product_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot load product")
	}

	return c.JSON(http.StatusOK, transport.FromProduct(product))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := h.DB.WithContext(ctx).Create(&product).Error; err != nil {
		l.Error("create_product_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot create product")
	}

	h.publish(c, strconv.Itoa(product.ID), productEvent("product_created", product))
	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, transport.FromProduct(product))
}

// UpdateProduct replaces a stored field only when the incoming value is
// non-zero, so an omitted field keeps its previous value. That also means
// {"stock": 0} does not change stock, the same falsy gap the original
// behavior has. Tests pin this down, do not "fix" it silently.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "id is not an integer")
		return errorJSON(c, http.StatusBadRequest, "id is not an integer")
	}

	var product models.Product
	if err := h.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_product_failed", "status", 404, "product_id", id)
			return productNotFound(c, id)
		}
		l.Error("update_product_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot load product")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != 0 {
		product.Price = req.Price
	}
	if req.Stock != 0 {
		product.Stock = req.Stock
	}

	if err := h.DB.WithContext(ctx).Save(&product).Error; err != nil {
		l.Error("update_product_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot save product")
	}

	h.publish(c, strconv.Itoa(product.ID), productEvent("product_updated", product))
	l.Info("update_product_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, transport.FromProduct(product))
}

// DeleteProduct runs behind RequireLogin and AdminOnly, so by the time it
// executes the caller is a verified admin. Existence is checked after that.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("delete_product_failed", "status", 400, "reason", "id is not an integer")
		return errorJSON(c, http.StatusBadRequest, "id is not an integer")
	}

	var product models.Product
	if err := h.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("delete_product_failed", "status", 404, "product_id", id)
			return productNotFound(c, id)
		}
		l.Error("delete_product_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot load product")
	}

	if err := h.DB.WithContext(ctx).Delete(&product).Error; err != nil {
		l.Error("delete_product_failed", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot delete product")
	}

	h.publish(c, strconv.Itoa(id), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	l.Info("delete_product_success", "product_id", id)
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Product with id %d has been deleted", id),
	})
}
