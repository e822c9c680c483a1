package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Knetic/govaluate"
	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

// ListPromoCodesHandler fetches all promo codes.
func ListPromoCodesHandler(c *gin.Context) {
	var promos []models.PromoCode
	if err := config.DB.Order("code").Find(&promos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch promo codes"})
		return
	}
	if promos == nil {
		promos = make([]models.PromoCode, 0)
	}
	c.JSON(http.StatusOK, promos)
}

// CreatePromoCodeHandler creates a promo code. The condition expression is
// checked for syntax up front so a broken one never reaches validation.
func CreatePromoCodeHandler(c *gin.Context) {
	var promo models.PromoCode
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	promo.Code = strings.ToUpper(strings.TrimSpace(promo.Code))
	if promo.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}
	if promo.Condition != "" {
		if _, err := govaluate.NewEvaluableExpression(promo.Condition); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid condition expression: " + err.Error()})
			return
		}
	}

	if err := config.DB.Create(&promo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promo code: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, promo)
}

// UpdatePromoCodeHandler updates a promo code.
func UpdatePromoCodeHandler(c *gin.Context) {
	var promo models.PromoCode
	if err := config.DB.First(&promo, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
		return
	}

	var input models.PromoCode
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Condition != "" {
		if _, err := govaluate.NewEvaluableExpression(input.Condition); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid condition expression: " + err.Error()})
			return
		}
	}

	promo.DiscountType = input.DiscountType
	promo.DiscountValue = input.DiscountValue
	promo.IsActive = input.IsActive
	promo.MaxUsage = input.MaxUsage
	promo.ExpiryDate = input.ExpiryDate
	promo.Condition = input.Condition

	if err := config.DB.Save(&promo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update promo code"})
		return
	}
	c.JSON(http.StatusOK, promo)
}

// DeletePromoCodeHandler removes a promo code.
func DeletePromoCodeHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.PromoCode{}, c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promo code"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Promo code deleted successfully"})
	}
}

// ValidatePromoCodeHandler checks a code against a prospective booking and
// returns the discount it would grant. Usage count is bumped separately when
// the booking is actually made.
func ValidatePromoCodeHandler(c *gin.Context) {
	var input struct {
		Code        string `json:"code" binding:"required"`
		Total       int64  `json:"total" binding:"required"`
		ProjectType string `json:"projectType"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var promo models.PromoCode
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if err := config.DB.Where("code = ?", code).First(&promo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
		return
	}

	if reason := promoUsableReason(&promo); reason != "" {
		c.JSON(http.StatusConflict, gin.H{"error": reason})
		return
	}

	ok, err := evaluatePromoCondition(promo.Condition, map[string]interface{}{
		"total":       input.Total,
		"projectType": input.ProjectType,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate condition: " + err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Booking does not meet the promo conditions"})
		return
	}

	discount := promoDiscount(&promo, input.Total)
	c.JSON(http.StatusOK, gin.H{
		"promo":    promo,
		"discount": discount,
		"payable":  input.Total - discount,
	})
}

func promoUsableReason(promo *models.PromoCode) string {
	if !promo.IsActive {
		return "Promo code is inactive"
	}
	if promo.ExpiryDate != nil && promo.ExpiryDate.Before(time.Now()) {
		return "Promo code has expired"
	}
	if promo.MaxUsage != nil && promo.UsageCount >= *promo.MaxUsage {
		return "Promo code has reached its usage limit"
	}
	return ""
}

// evaluatePromoCondition runs the stored boolean expression against the
// booking parameters. An empty condition always passes.
func evaluatePromoCondition(condition string, params map[string]interface{}) (bool, error) {
	if condition == "" {
		return true, nil
	}
	expr, err := govaluate.NewEvaluableExpression(condition)
	if err != nil {
		return false, err
	}
	// govaluate compares numbers as float64.
	normalized := make(map[string]interface{}, len(params))
	for k, v := range params {
		if n, ok := v.(int64); ok {
			normalized[k] = float64(n)
		} else {
			normalized[k] = v
		}
	}
	result, err := expr.Evaluate(normalized)
	if err != nil {
		return false, err
	}
	ok, isBool := result.(bool)
	if !isBool {
		return false, fmt.Errorf("condition did not evaluate to a boolean")
	}
	return ok, nil
}

// promoDiscount computes the rupiah discount, capped at the booking total.
func promoDiscount(promo *models.PromoCode, total int64) int64 {
	var discount int64
	switch promo.DiscountType {
	case models.DiscountPercentage:
		discount = total * promo.DiscountValue / 100
	case models.DiscountFixed:
		discount = promo.DiscountValue
	}
	if discount > total {
		discount = total
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}
