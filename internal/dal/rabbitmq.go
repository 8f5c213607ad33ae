package dal

import (
	"log"

	"github.com/streadway/amqp"

	"bloomfundr-api/internal/config"
)

var RabbitConn *amqp.Connection
var RabbitCh *amqp.Channel

// InitRabbitMQ declares the campaign event topology: closeouts fan into
// the payout worker, committed payouts into the transfer worker.
func InitRabbitMQ() {
	url := config.C.RabbitMQ.URL
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("rabbitmq dial failed: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbitmq channel failed: %v", err)
	}

	// exchange & queues
	if err := ch.ExchangeDeclare("campaign_events", "topic", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare failed: %v", err)
	}
	if _, err := ch.QueueDeclare("campaign_closed", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare campaign_closed failed: %v", err)
	}
	if _, err := ch.QueueDeclare("payout_created", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare payout_created failed: %v", err)
	}
	if err := ch.QueueBind("campaign_closed", "campaign.closed", "campaign_events", false, nil); err != nil {
		log.Fatalf("queue bind campaign_closed failed: %v", err)
	}
	if err := ch.QueueBind("payout_created", "payout.created", "campaign_events", false, nil); err != nil {
		log.Fatalf("queue bind payout_created failed: %v", err)
	}

	RabbitConn = conn
	RabbitCh = ch
}
