package handler

import (
	"github.com/gin-gonic/gin"

	"bloomfundr-api/internal/dto"
	"bloomfundr-api/internal/service"
)

type OrderHandler struct{ svc *service.OrderService }

func NewOrderHandler() *OrderHandler {
	return &OrderHandler{svc: service.NewOrderService()}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderReq
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

func (h *OrderHandler) Get(c *gin.Context) {
	vo, err := h.svc.Get(c.Param("order_number"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, vo)
}

// Webhook receives the payment provider callback. Signature and
// freshness checks happen in the service; a bad signature gets the
// error envelope so providers see a definite rejection, not a retryable
// failure.
func (h *OrderHandler) Webhook(c *gin.Context) {
	var req dto.PaymentWebhookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.HandleWebhook(req); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}
