package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sitewatch/pkg/infra"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaSink republishes status events to a Kafka topic, keyed by site id, for
// consumers outside this process. It is just another subscriber of the
// broadcaster and inherits its best-effort semantics.
type KafkaSink struct {
	writer   infra.KafkaWriter
	logger   *zap.Logger
	unsub    func()
	doneChan chan struct{}
}

func NewKafkaSink(writer infra.KafkaWriter, logger *zap.Logger) *KafkaSink {
	return &KafkaSink{
		writer:   writer,
		logger:   logger,
		doneChan: make(chan struct{}),
	}
}

// Start subscribes to b and forwards events until Stop is called.
func (s *KafkaSink) Start(b *Broadcaster) {
	events, unsub := b.Subscribe()
	s.unsub = unsub
	go func() {
		defer close(s.doneChan)
		for event := range events {
			s.publish(event)
		}
	}()
}

func (s *KafkaSink) publish(event StatusEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to marshal status event", zap.Error(fmt.Errorf("KafkaSink.publish: %w", err)))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SiteID),
		Value: b,
	})
	if err != nil {
		s.logger.Error("failed to write status event", zap.Error(fmt.Errorf("KafkaSink.publish: %w", err)), zap.String("site_id", event.SiteID))
	}
}

func (s *KafkaSink) Stop() {
	if s.unsub != nil {
		s.unsub()
	}
	<-s.doneChan
	s.writer.Close()
}
