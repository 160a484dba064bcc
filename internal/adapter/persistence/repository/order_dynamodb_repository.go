package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	orderUserIndex   = "user_id-index"
	orderStatusIndex = "status-index"
)

type OrderDynamoRepository struct {
	ddb   DynamoDBAPI
	table string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI, tables Tables) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, table: tables.withDefaults().Orders}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            keyOf("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, fmt.Errorf("unmarshal order %s: %w", id, err)
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.table),
		IndexName:                aws.String(orderUserIndex),
		KeyConditionExpression:   aws.String("#user_id = :user_id"),
		ExpressionAttributeNames: map[string]string{"#user_id": "user_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return newestFirst(decodeOrders(items))
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.table)})
	if err != nil {
		return nil, err
	}
	return newestFirst(decodeOrders(items))
}

func (r *OrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.table),
		IndexName:                aws.String(orderStatusIndex),
		KeyConditionExpression:   aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	return newestFirst(decodeOrders(items))
}

// ListExpiredPending reads the status index, which is eventually consistent.
// The state machine re-reads each order before expiring it.
func (r *OrderDynamoRepository) ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]entities.Order, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(orderStatusIndex),
		KeyConditionExpression: aws.String("#status = :status AND #expires_at_epoch <= :now"),
		ExpressionAttributeNames: map[string]string{
			"#status":           "status",
			"#expires_at_epoch": "expires_at_epoch",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
			":now":    &types.AttributeValueMemberN{Value: strconv.FormatInt(now.UTC().UnixMilli(), 10)},
		},
		ScanIndexForward: aws.Bool(true),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		return decodeOrders(out.Items)
	}

	items, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	return decodeOrders(items)
}

func (r *OrderDynamoRepository) AttachPayment(ctx context.Context, orderID, paymentID, paymentType string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.table),
		Key:                 keyOf("id", orderID),
		UpdateExpression:    aws.String("SET #payment_id = :payment_id, #payment_type = :payment_type"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#payment_id":   "payment_id",
			"#payment_type": "payment_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payment_id":   &types.AttributeValueMemberS{Value: paymentID},
			":payment_type": &types.AttributeValueMemberS{Value: paymentType},
			":pending":      &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil
		}
		return err
	}
	return nil
}

func decodeOrders(items []map[string]types.AttributeValue) ([]entities.Order, error) {
	var raw []orderItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal orders: %w", err)
	}
	out := make([]entities.Order, 0, len(raw))
	for _, it := range raw {
		out = append(out, fromOrderItem(it))
	}
	return out, nil
}

func newestFirst(orders []entities.Order, err error) ([]entities.Order, error) {
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}
