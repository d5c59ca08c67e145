// internal/handlers/analytics.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/openmart/ecommerce-backend/internal/services"
	"github.com/openmart/ecommerce-backend/internal/utils"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

type topProductsQuery struct {
	Days     int    `form:"days,default=1000" binding:"min=1,max=3650"`
	Limit    int64  `form:"limit,default=5" binding:"min=1,max=20"`
	Category string `form:"category"`
}

// GET /analytics/top-products
func (h *AnalyticsHandler) GetTopProducts(c *gin.Context) {
	var q topProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	topProducts, err := h.analyticsService.GetTopProducts(c.Request.Context(), services.TopProductsParams{
		Days:     q.Days,
		Limit:    q.Limit,
		Category: q.Category,
	})
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, topProducts)
}
