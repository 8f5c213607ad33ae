package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bloomfundr-api/internal/constant"
	"bloomfundr-api/internal/dto"
	"bloomfundr-api/internal/service"
	"bloomfundr-api/internal/utils"
)

type CampaignHandler struct{ svc *service.CampaignService }

func NewCampaignHandler() *CampaignHandler {
	return &CampaignHandler{svc: service.NewCampaignService()}
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var req dto.CreateCampaignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	vo, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, vo)
}

func (h *CampaignHandler) Get(c *gin.Context) {
	campaignID, err := campaignParam(c)
	if err != nil {
		return
	}
	vo, err := h.svc.Get(campaignID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, vo)
}

// Close ends the selling window and kicks off the payout run.
func (h *CampaignHandler) Close(c *gin.Context) {
	campaignID, err := campaignParam(c)
	if err != nil {
		return
	}
	vo, err := h.svc.Close(campaignID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, vo)
}

func (h *CampaignHandler) Fulfill(c *gin.Context) {
	campaignID, err := campaignParam(c)
	if err != nil {
		return
	}
	if err := h.svc.Fulfill(campaignID); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

func campaignParam(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, utils.Error(constant.CodeInvalidParams))
	}
	return id, err
}
