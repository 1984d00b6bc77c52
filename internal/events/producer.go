package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/hrishikesh-200/autodeploy/internal/tasks"
	"github.com/hrishikesh-200/autodeploy/pkg/errors"
	"github.com/hrishikesh-200/autodeploy/pkg/logger"
)

type Config struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// Event is one task lifecycle transition.
type Event struct {
	TaskID    string         `json:"task_id"`
	Task      string         `json:"task"`
	Round     int            `json:"round"`
	Nonce     string         `json:"nonce"`
	Status    tasks.Status   `json:"status"`
	FailCode  tasks.FailCode `json:"fail_code,omitempty"`
	CommitSHA string         `json:"commit_sha,omitempty"`
	At        time.Time      `json:"at"`
}

type Producer interface {
	Publish(ctx context.Context, event Event) error
}

// New returns a kafka-backed producer, or a no-op one when no brokers
// are configured.
func New(cfg Config, log logger.Logger) Producer {
	if len(cfg.Brokers) == 0 {
		return nopProducer{}
	}

	c := &kafka.Client{
		Addr:    kafka.TCP(cfg.Brokers...),
		Timeout: time.Second * 5,
	}

	return &kafkaProducer{
		client: c,
		topic:  cfg.Topic,
		log:    log.With("kafka_producer"),
	}
}

type kafkaProducer struct {
	client *kafka.Client
	topic  string
	log    logger.Logger
}

func (p *kafkaProducer) Publish(ctx context.Context, event Event) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		return errors.WrapFail(err, "marshal event to json")
	}

	record := kafka.Record{
		Key:   kafka.NewBytes([]byte(event.TaskID)),
		Value: kafka.NewBytes(bytes),
	}

	_, err = p.client.Produce(ctx, &kafka.ProduceRequest{
		Topic:        p.topic,
		RequiredAcks: 1,
		Records:      kafka.NewRecordReader(record),
	})
	if err != nil {
		return errors.WrapFail(err, "produce event")
	}

	return nil
}

type nopProducer struct{}

func (nopProducer) Publish(context.Context, Event) error { return nil }
