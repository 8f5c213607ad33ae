package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bloomfundr-api/internal/constant"
	"bloomfundr-api/internal/dto"
	"bloomfundr-api/internal/service"
	"bloomfundr-api/internal/utils"
)

type PricingHandler struct{ svc *service.PricingService }

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{svc: service.NewPricingService()}
}

// Suggest returns the fee-covering retail price for one product config.
func (h *PricingHandler) Suggest(c *gin.Context) {
	var req dto.SuggestPricingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	vo, err := h.svc.Suggest(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, vo)
}

// Split reports how an actual sale at a given retail price divides up.
func (h *PricingHandler) Split(c *gin.Context) {
	var req dto.RevenueSplitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	vo, err := h.svc.Split(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, vo)
}

// Project estimates campaign revenue at the requested sales volumes.
func (h *PricingHandler) Project(c *gin.Context) {
	var req dto.ProjectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	rows, err := h.svc.Project(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, rows)
}

// SetRetailPrice overrides one product's retail price, subject to the
// break-even floor.
func (h *PricingHandler) SetRetailPrice(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, utils.Error(constant.CodeInvalidParams))
		return
	}
	var req dto.UpdateRetailPriceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	vo, err := h.svc.SetRetailPrice(productID, req.RetailPrice)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, vo)
}
