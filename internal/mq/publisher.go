package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"bloomfundr-api/internal/dal"
	"bloomfundr-api/internal/dto"
)

const exchangeName = "campaign_events"

const (
	routingCampaignClosed = "campaign.closed"
	routingPayoutCreated  = "payout.created"
)

func publish(routingKey string, body []byte) error {
	err := dal.RabbitCh.Publish(exchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.Printf("[MQ] publish %s failed: %v", routingKey, err)
	}
	return err
}

// PublishCampaignClosed announces a closeout so the payout worker picks
// it up.
func PublishCampaignClosed(evt dto.CampaignClosedEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return publish(routingCampaignClosed, body)
}

// PublishPayoutCreated hands a pending ledger row to the funds transfer
// worker.
func PublishPayoutCreated(evt dto.PayoutCreatedEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return publish(routingPayoutCreated, body)
}
