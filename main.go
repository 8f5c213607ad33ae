package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"bloomfundr-api/internal/config"
	"bloomfundr-api/internal/dal"
	"bloomfundr-api/internal/dto"
	"bloomfundr-api/internal/handler"
	"bloomfundr-api/internal/idgen"
	"bloomfundr-api/internal/middleware"
	"bloomfundr-api/internal/mq"
	"bloomfundr-api/internal/service"
	"bloomfundr-api/internal/system"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitMainDB()
	dal.InitOrderDB()
	dal.InitRedis()
	dal.InitRabbitMQ()

	// idgen
	idgen.InitFromEnv()

	// sys_config overrides (fees, ops alert channel)
	system.Config()

	// campaign.closed events drive the payout closeout
	payoutSvc := service.NewPayoutService()
	go mq.StartCampaignClosedConsumer(func(campaignID uint64) error {
		_, err := payoutSvc.Commit(campaignID)
		return err
	})

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterValidations()
	r := gin.New()
	r.Use(middleware.Recover(), middleware.Trace(), middleware.RequestLogger())

	v1 := r.Group("/api/v1")
	{
		ph := handler.NewPricingHandler()
		v1.POST("/pricing/suggest", ph.Suggest)
		v1.POST("/pricing/split", ph.Split)
		v1.POST("/pricing/project", ph.Project)
		v1.PUT("/products/:id/retail-price", middleware.AuthHMAC(), ph.SetRetailPrice)

		ch := handler.NewCampaignHandler()
		v1.POST("/campaigns", middleware.AuthHMAC(), ch.Create)
		v1.GET("/campaigns/:id", ch.Get)
		v1.POST("/campaigns/:id/close", middleware.AuthHMAC(), ch.Close)
		v1.POST("/campaigns/:id/fulfill", middleware.AuthHMAC(), ch.Fulfill)

		oh := handler.NewOrderHandler()
		v1.POST("/orders", oh.Create)
		v1.GET("/orders/:order_number", oh.Get)
		v1.POST("/orders/payment/webhook", oh.Webhook)

		yh := handler.NewPayoutHandler()
		v1.GET("/campaigns/:id/payouts/preview", yh.Preview)
		v1.POST("/campaigns/:id/payouts/commit", middleware.AuthHMAC(), yh.Commit)
		v1.GET("/payouts/party", yh.Party)
	}

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
