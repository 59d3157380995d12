package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pix_checkout/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

type fakePutter struct {
	input *dynamodb.PutItemInput
	err   error
}

func (f *fakePutter) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func TestWebhookEventDynamoRepository_Publish(t *testing.T) {
	received := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	ev := entities.WebhookEvent{
		ID:   "ev-1",
		Kind: entities.WebhookEventPaid,
		Notification: entities.WebhookNotification{
			Gateway:       entities.GatewayPushinPay,
			TransactionID: "pp-1",
			Status:        "paid",
			Amount:        decimal.RequireFromString("19.9"),
			Raw:           json.RawMessage(`{"id":"pp-1","status":"paid","value":1990}`),
			ReceivedAt:    received,
		},
	}

	t.Run("stores the event", func(t *testing.T) {
		putter := &fakePutter{}
		repo := NewWebhookEventDynamoRepository(putter, "")
		if err := repo.Publish(context.Background(), ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *putter.input.TableName != DefaultWebhookEventsTableName {
			t.Fatalf("unexpected table %s", *putter.input.TableName)
		}

		var it webhookEventItem
		if err := attributevalue.UnmarshalMap(putter.input.Item, &it); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if it.ID != "ev-1" || it.TransactionID != "pp-1" || it.Kind != "paid" || it.Amount != "19.90" {
			t.Fatalf("unexpected item %+v", it)
		}
		if it.ReceivedAt != "2024-05-01T10:00:00Z" {
			t.Fatalf("unexpected received_at %s", it.ReceivedAt)
		}
		if it.Payload["status"] != "paid" || it.PayloadRaw != "" {
			t.Fatalf("expected decoded payload, got %+v", it)
		}
	})

	t.Run("form payload kept raw", func(t *testing.T) {
		putter := &fakePutter{}
		repo := NewWebhookEventDynamoRepository(putter, "events")
		formEv := ev
		formEv.Notification.Raw = json.RawMessage(`id=pp-1&status=paid`)
		if err := repo.Publish(context.Background(), formEv); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var it webhookEventItem
		_ = attributevalue.UnmarshalMap(putter.input.Item, &it)
		if it.PayloadRaw != "id=pp-1&status=paid" || it.Payload != nil {
			t.Fatalf("expected raw payload, got %+v", it)
		}
	})

	t.Run("put error", func(t *testing.T) {
		repo := NewWebhookEventDynamoRepository(&fakePutter{err: errors.New("throttled")}, "events")
		if err := repo.Publish(context.Background(), ev); err == nil {
			t.Fatalf("expected error")
		}
	})
}
