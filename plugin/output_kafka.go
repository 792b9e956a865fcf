package plugin

import (
	"encoding/json"

	"github.com/Shopify/sarama"
	slog "github.com/vearne/simplelog"

	"github.com/vearne/pcapdump/model"
)

// KafkaOutput publishes records to a Kafka topic as JSON, keyed by the
// record UUID.
type KafkaOutput struct {
	producer sarama.AsyncProducer
	topic    string
}

func NewKafkaOutput(hosts []string, topic string) (*KafkaOutput, error) {
	var o KafkaOutput
	o.topic = topic

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Retry.Max = 3

	var err error
	o.producer, err = sarama.NewAsyncProducer(hosts, cfg)
	if err != nil {
		return nil, err
	}

	go func() {
		for err := range o.producer.Errors() {
			slog.Error("KafkaOutput:%v", err)
		}
	}()

	slog.Info("NewKafkaOutput, hosts:%v, topic:%v", hosts, topic)
	return &o, nil
}

func (o *KafkaOutput) Close() error {
	return o.producer.Close()
}

func (o *KafkaOutput) Write(record *model.FrameRecord) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	o.producer.Input() <- &sarama.ProducerMessage{
		Topic: o.topic,
		Key:   sarama.StringEncoder(record.Meta.UUID),
		Value: sarama.ByteEncoder(b),
	}
	return nil
}
