// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/openmart/ecommerce-backend/internal/pipeline"
	"github.com/openmart/ecommerce-backend/internal/services"
	"github.com/openmart/ecommerce-backend/internal/utils"
)

type ProductHandler struct {
	searchService *services.SearchService
}

func NewProductHandler(searchService *services.SearchService) *ProductHandler {
	return &ProductHandler{
		searchService: searchService,
	}
}

type searchQuery struct {
	Query    string   `form:"query" binding:"required,min=1"`
	MinPrice *float64 `form:"min_price" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"max_price" binding:"omitempty,gte=0"`
	Category string   `form:"category"`
	Brand    string   `form:"brand"`
	SortBy   string   `form:"sort_by"`
	Limit    int64    `form:"limit,default=10" binding:"min=1,max=100"`
	Skip     int64    `form:"skip,default=0" binding:"min=0"`
}

// GET /products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	params := services.SearchParams{
		Query: q.Query,
		Filter: pipeline.ProductFilter{
			MinPrice: q.MinPrice,
			MaxPrice: q.MaxPrice,
			Category: q.Category,
			Brand:    q.Brand,
		},
		Sort:  pipeline.ParseSortKey(q.SortBy),
		Skip:  q.Skip,
		Limit: q.Limit,
	}

	products, err := h.searchService.Search(c.Request.Context(), params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, products)
}
