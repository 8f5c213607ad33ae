package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"bloomfundr-api/internal/constant"
	"bloomfundr-api/internal/dal"
	"bloomfundr-api/internal/dto"
	"bloomfundr-api/internal/notify"
	"bloomfundr-api/internal/system"
)

const maxRetry = 3

// CommitFunc runs the payout closeout for one campaign. Injected from
// main so the consumer stays decoupled from the service layer.
type CommitFunc func(campaignID uint64) error

// StartCampaignClosedConsumer drains campaign.closed events and runs
// the payout commit for each. Failed commits are republished with an
// incremented retry count; after maxRetry attempts the event is
// dropped and ops gets an alert.
func StartCampaignClosedConsumer(commit CommitFunc) {
	if dal.RabbitCh == nil {
		log.Println("RabbitMQ channel not initialized")
		return
	}
	msgs, err := dal.RabbitCh.Consume("campaign_closed", "", false, false, false, false, nil)
	if err != nil {
		log.Printf("consume campaign_closed failed: %v", err)
		return
	}
	log.Println("[MQ] campaign.closed consumer started")
	for d := range msgs {
		go handleCampaignClosed(d, commit)
	}
}

func handleCampaignClosed(d amqp.Delivery, commit CommitFunc) {
	var evt dto.CampaignClosedEvent
	if err := json.Unmarshal(d.Body, &evt); err != nil {
		log.Printf("campaign.closed unmarshal err: %v", err)
		d.Nack(false, false)
		return
	}

	err := commit(evt.CampaignID)
	if err == nil {
		d.Ack(false)
		return
	}
	if isTerminal(err) {
		// Nothing to pay out, or another run already settled it.
		log.Printf("campaign %d closeout skipped: %v", evt.CampaignID, err)
		d.Ack(false)
		return
	}

	log.Printf("campaign %d closeout failed: %v", evt.CampaignID, err)
	if evt.RetryCount < maxRetry {
		evt.RetryCount++
		body, _ := json.Marshal(evt)
		_ = publish(routingCampaignClosed, body)
		log.Printf("retrying closeout for campaign %d (attempt %d)", evt.CampaignID, evt.RetryCount)
	} else {
		log.Printf("max retry reached for campaign %d", evt.CampaignID)
		notify.NotifyPayoutAlert(system.BotChatID, "ERROR", "campaign closeout exhausted retries",
			evt.CampaignID, map[string]string{"error": err.Error()})
	}
	d.Nack(false, false)
}

// isTerminal reports errors that retrying cannot fix.
func isTerminal(err error) bool {
	ce, ok := err.(constant.Error)
	if !ok {
		return false
	}
	switch ce.Code() {
	case constant.CodePayoutNoPaidOrders, constant.CodePayoutRunInProgress,
		constant.CodeCampaignNotFound, constant.CodeCampaignAlreadyClosed:
		return true
	}
	return false
}
