package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const DefaultWebhookEventsTableName = "webhook_events"

type webhookEventItem struct {
	ID            string                 `dynamodbav:"id"`
	TransactionID string                 `dynamodbav:"transaction_id"`
	Gateway       string                 `dynamodbav:"gateway"`
	Kind          string                 `dynamodbav:"kind"`
	Flow          string                 `dynamodbav:"flow,omitempty"`
	Action        string                 `dynamodbav:"action,omitempty"`
	Event         string                 `dynamodbav:"event,omitempty"`
	Status        string                 `dynamodbav:"status,omitempty"`
	Amount        string                 `dynamodbav:"amount"`
	ReceivedAt    string                 `dynamodbav:"received_at"`
	Payload       map[string]interface{} `dynamodbav:"payload,omitempty"`
	PayloadRaw    string                 `dynamodbav:"payload_raw,omitempty"`
}

type dynamoPutter interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// WebhookEventDynamoRepository appends every dispatched webhook event to a
// DynamoDB table. It is an audit trail only; payment state is never read back.
//
// Table requirements:
//   - PK: id (string)
type WebhookEventDynamoRepository struct {
	ddb       dynamoPutter
	tableName string
}

var _ interfaces.INotificationSink = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb dynamoPutter, tableName string) *WebhookEventDynamoRepository {
	if tableName == "" {
		tableName = DefaultWebhookEventsTableName
	}
	return &WebhookEventDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WebhookEventDynamoRepository) Publish(ctx context.Context, ev entities.WebhookEvent) error {
	av, err := attributevalue.MarshalMap(toWebhookEventItem(ev))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return err
	}
	log.Printf("[webhook][journal] stored event_id=%s id=%s kind=%s", ev.ID, ev.Notification.TransactionID, ev.Kind)
	return nil
}

func toWebhookEventItem(ev entities.WebhookEvent) webhookEventItem {
	n := ev.Notification
	it := webhookEventItem{
		ID:            ev.ID,
		TransactionID: n.TransactionID,
		Gateway:       string(n.Gateway),
		Kind:          string(ev.Kind),
		Flow:          n.Flow,
		Action:        n.Action,
		Event:         n.Event,
		Status:        n.Status,
		Amount:        n.Amount.StringFixed(2),
		ReceivedAt:    n.ReceivedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(n.Raw) > 0 {
		var payload map[string]interface{}
		if err := json.Unmarshal(n.Raw, &payload); err == nil {
			it.Payload = payload
		} else {
			it.PayloadRaw = string(n.Raw)
		}
	}
	return it
}
