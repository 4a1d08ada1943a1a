// Package kafka publishes impressions that could not be recorded to a
// dead-letter topic, where a reconciliation job can replay them.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"adgate/internal/core/domain"
	"adgate/internal/core/port"
)

var _ port.DeadLetterSink = (*DeadLetterSink)(nil)

// DeadLetterEvent is the message body. Money is encoded as decimal strings.
type DeadLetterEvent struct {
	Token          string    `json:"token"`
	CampaignID     int64     `json:"campaign_id"`
	IdentityID     string    `json:"identity_id"`
	EffectiveCPM   string    `json:"effective_cpm"`
	Revenue        string    `json:"revenue"`
	ImpressionDate string    `json:"impression_date"`
	CreatedAt      time.Time `json:"created_at"`
	Watermark      int64     `json:"watermark"`
	Cause          string    `json:"cause"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// DeadLetterSink implements port.DeadLetterSink with a kafka.Writer.
type DeadLetterSink struct {
	writer messageWriter
}

// NewDeadLetterSink creates a sink writing to topic. Messages are keyed by
// identity so one identity's events stay ordered.
func NewDeadLetterSink(brokers []string, topic string) *DeadLetterSink {
	return &DeadLetterSink{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}}
}

// Publish implements port.DeadLetterSink.
func (s *DeadLetterSink) Publish(ctx context.Context, imp domain.Impression, watermark int64, cause error) error {
	ev := DeadLetterEvent{
		Token:          imp.Token,
		CampaignID:     imp.CampaignID,
		IdentityID:     imp.IdentityID,
		EffectiveCPM:   imp.EffectiveCPM.String(),
		Revenue:        imp.Revenue.String(),
		ImpressionDate: imp.ImpressionDate.Format(time.DateOnly),
		CreatedAt:      imp.CreatedAt,
		Watermark:      watermark,
	}
	if cause != nil {
		ev.Cause = cause.Error()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(imp.IdentityID),
		Value: body,
		Headers: []kafka.Header{
			{Key: "token", Value: []byte(imp.Token)},
		},
	}
	if err = s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish dead letter %s: %w", imp.Token, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (s *DeadLetterSink) Close() error {
	return s.writer.Close()
}
