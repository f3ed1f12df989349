package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"autocare/config"
	"autocare/infras/kafka"
	bookingModel "autocare/internal/domains/booking/model"
)

// Dispatcher fans booking lifecycle events out to interested consumers.
// Enqueue never blocks the calling request and never fails it: a full queue
// or a broker outage is logged and the event is dropped.
type Dispatcher interface {
	Enqueue(event bookingModel.Event)
	Close()
}

type dispatcherImpl struct {
	cfg    *config.Config
	kafka  kafka.Client
	events chan bookingModel.Event
	done   chan struct{}
}

func NewDispatcher(cfg *config.Config, kafkaClient kafka.Client) Dispatcher {
	d := &dispatcherImpl{
		cfg:    cfg,
		kafka:  kafkaClient,
		events: make(chan bookingModel.Event, cfg.Notification.QueueSize),
		done:   make(chan struct{}),
	}

	go d.run()

	return d
}

func (d *dispatcherImpl) Enqueue(event bookingModel.Event) {
	select {
	case d.events <- event:
	default:
		log.Warn().
			Str("eventType", event.Type).
			Str("bookingNumber", event.BookingNumber).
			Msg("notification queue full, dropping event")
	}
}

// Close stops accepting events and drains the queue before returning.
func (d *dispatcherImpl) Close() {
	close(d.events)
	<-d.done
}

func (d *dispatcherImpl) run() {
	defer close(d.done)

	for event := range d.events {
		d.publish(event)
	}
}

func (d *dispatcherImpl) publish(event bookingModel.Event) {
	message := kafka.Message{
		Key:   event.BookingNumber,
		Value: event,
	}

	err := d.kafka.SendMessages(context.Background(), d.cfg.Kafka.Topics.BookingEvents, message)
	if err != nil {
		log.Error().Err(err).
			Str("eventType", event.Type).
			Str("bookingNumber", event.BookingNumber).
			Msg("failed to publish booking event")

		return
	}

	log.Info().
		Str("eventType", event.Type).
		Str("bookingNumber", event.BookingNumber).
		Msg("booking event published")
}
