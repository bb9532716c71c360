package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/hyrahs/shopstore-api/app/services"
	"github.com/hyrahs/shopstore-api/pkg/bind"
	"github.com/hyrahs/shopstore-api/pkg/logger"
	"github.com/hyrahs/shopstore-api/pkg/response"
	"github.com/hyrahs/shopstore-api/pkg/router"
)

// maxUploadBytes bounds multipart uploads (product images).
const maxUploadBytes = 10 << 20

// ProductController handles the catalogue routes.
type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// Create adds a product from a multipart form: name, description, price,
// plus an "image" file part.
// POST /api/products (admin)
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	price, _ := strconv.ParseFloat(strings.TrimSpace(r.FormValue("price")), 64)

	file, header, err := r.FormFile("image")
	var imageName string
	if err == nil {
		defer file.Close()
		imageName = header.Filename
	}

	product, err := c.products.Add(
		r.Context(),
		r.FormValue("name"),
		r.FormValue("description"),
		price,
		imageName,
		file,
	)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("product added", "product_id", product.ID.Hex())
	response.Created(w, product)
}

// List returns the catalogue.
// GET /api/products
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, products)
}

// Get returns a single product.
// GET /api/products/{id}
func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	product, err := c.products.Get(r.Context(), router.Param(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, product)
}

type updatePriceRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// UpdatePrice changes a product's price.
// PUT /api/products/{id} (admin)
func (c *ProductController) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	var req updatePriceRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.products.UpdatePrice(r.Context(), router.Param(r, "id"), req.Price)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	response.Success(w, product)
}

// Delete removes a product and its stored image.
// DELETE /api/products/{id} (admin)
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")
	if err := c.products.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("product deleted", "product_id", id)
	response.Message(w, "Product deleted successfully")
}
