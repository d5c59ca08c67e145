// internal/handlers/review.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/openmart/ecommerce-backend/internal/services"
	"github.com/openmart/ecommerce-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

type reviewListQuery struct {
	Limit int64 `form:"limit,default=20" binding:"min=1,max=100"`
	Skip  int64 `form:"skip,default=0" binding:"min=0"`
}

// GET /products/:product_id/reviews
func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	var page reviewListQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	reviews, err := h.reviewService.GetProductReviews(c.Request.Context(), c.Param("product_id"), page.Skip, page.Limit)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			utils.BadRequestResponse(c, "Invalid product ID format", nil)
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "Product not found")
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, reviews)
}
