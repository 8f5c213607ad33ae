package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bloomfundr-api/internal/constant"
	"bloomfundr-api/internal/dto"
	"bloomfundr-api/internal/service"
	"bloomfundr-api/internal/utils"
)

type PayoutHandler struct{ svc *service.PayoutService }

func NewPayoutHandler() *PayoutHandler {
	return &PayoutHandler{svc: service.NewPayoutService()}
}

// Preview shows the current split without writing ledger rows.
func (h *PayoutHandler) Preview(c *gin.Context) {
	campaignID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, utils.Error(constant.CodeInvalidParams))
		return
	}
	vo, err := h.svc.Preview(campaignID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, vo)
}

// Commit runs the closeout and writes the ledger.
func (h *PayoutHandler) Commit(c *gin.Context) {
	campaignID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, utils.Error(constant.CodeInvalidParams))
		return
	}
	resp, err := h.svc.Commit(campaignID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, resp)
}

// Party returns one party's owed total, e.g. for a florist dashboard.
func (h *PayoutHandler) Party(c *gin.Context) {
	var req dto.PartyPayoutReq
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	vo, err := h.svc.Party(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, vo)
}
