package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/models"
)

// publishEvent publishes a ledger event to Kafka. Publishing is best effort:
// the change is already persisted, so failures are only logged.
func (l *Ledger) publishEvent(ctx context.Context, evt models.LedgerEvent) {
	evt.EventID = uuid.NewString()
	evt.Timestamp = l.now().Unix()

	if l.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", evt.Type, "card_id", evt.CardID)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal ledger event for Kafka", "type", evt.Type, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.CardID),
		Value: data,
	}

	if err := l.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish ledger event to Kafka", "type", evt.Type, "event_id", evt.EventID, "error", err)
	} else {
		logger.Log.Infow("Ledger event published to Kafka", "type", evt.Type, "event_id", evt.EventID, "card_id", evt.CardID)
	}
}
