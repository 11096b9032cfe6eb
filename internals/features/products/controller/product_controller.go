package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pawmart_backend/internals/features/products/dto"
	"pawmart_backend/internals/features/products/model"
	helper "pawmart_backend/internals/helpers"
)

type ProductController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db, Validate: validator.New()}
}

// GET /api/public/products — ?category= & ?in_stock=true filters
func (ctrl *ProductController) ListProducts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Product{})
	if category := c.Query("category"); category != "" {
		q = q.Where("product_category = ?", category)
	}
	if c.QueryBool("in_stock") {
		q = q.Where("product_stock_quantity > 0")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count products")
	}
	var products []model.Product
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list products")
	}
	return helper.JsonList(c, "", products, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/public/products/:id
func (ctrl *ProductController) GetProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := ctrl.DB.Where("product_id = ?", c.Params("id")).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load product")
	}
	return helper.JsonOK(c, "", product)
}

// POST /api/a/products
func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	var body dto.CreateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.Price.LessThanOrEqual(decimal.Zero) {
		return helper.JsonError(c, fiber.StatusBadRequest, "price must be greater than zero")
	}

	product := model.Product{
		ProductName:          body.ProductName,
		ProductCategory:      body.Category,
		ProductPrice:         body.Price,
		ProductDescription:   body.Description,
		ProductImageURL:      body.ImageURL,
		ProductStockQuantity: body.StockQuantity,
	}
	if err := ctrl.DB.Create(&product).Error; err != nil {
		log.Println("[ERROR] create product:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create product")
	}
	return helper.JsonCreated(c, "", product)
}

// PATCH /api/a/products/:id
func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	var body dto.UpdateProductRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var product model.Product
	if err := ctrl.DB.Where("product_id = ?", c.Params("id")).First(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
	}

	updates := map[string]any{}
	if body.ProductName != nil {
		updates["product_name"] = *body.ProductName
	}
	if body.Category != nil {
		updates["product_category"] = *body.Category
	}
	if body.Price != nil {
		if body.Price.LessThanOrEqual(decimal.Zero) {
			return helper.JsonError(c, fiber.StatusBadRequest, "price must be greater than zero")
		}
		updates["product_price"] = *body.Price
	}
	if body.Description != nil {
		updates["product_description"] = body.Description
	}
	if body.ImageURL != nil {
		updates["product_image_url"] = body.ImageURL
	}
	if body.StockQuantity != nil {
		updates["product_stock_quantity"] = *body.StockQuantity
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&product).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update product")
		}
	}
	return helper.JsonUpdated(c, "", product)
}

// DELETE /api/a/products/:id
func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	res := ctrl.DB.Where("product_id = ?", c.Params("id")).Delete(&model.Product{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not delete product")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
	}
	return helper.JsonDeleted(c, "", nil)
}
