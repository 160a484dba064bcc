package repository

import (
	"context"
	"fmt"
	"sort"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	exchangeOrderIndex = "order_id-index"
	exchangeUserIndex  = "user_id-index"
)

type ExchangeDynamoRepository struct {
	ddb   DynamoDBAPI
	table string
}

var _ interfaces.IExchangeRepository = (*ExchangeDynamoRepository)(nil)

func NewExchangeDynamoRepository(ddb DynamoDBAPI, tables Tables) *ExchangeDynamoRepository {
	return &ExchangeDynamoRepository{ddb: ddb, table: tables.withDefaults().Exchanges}
}

func (r *ExchangeDynamoRepository) GetByID(ctx context.Context, id string) (entities.ExchangeRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            keyOf("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ExchangeRequest{}, nil
	}

	var it exchangeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ExchangeRequest{}, fmt.Errorf("unmarshal exchange request %s: %w", id, err)
	}
	return fromExchangeItem(it), nil
}

func (r *ExchangeDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.ExchangeRequest, error) {
	return r.queryIndex(ctx, exchangeOrderIndex, "order_id", orderID)
}

func (r *ExchangeDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.ExchangeRequest, error) {
	return r.queryIndex(ctx, exchangeUserIndex, "user_id", userID)
}

func (r *ExchangeDynamoRepository) ListAll(ctx context.Context) ([]entities.ExchangeRequest, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.table)})
	if err != nil {
		return nil, err
	}
	return decodeExchanges(items)
}

func (r *ExchangeDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.ExchangeRequest, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.table),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeExchanges(items)
}

func decodeExchanges(items []map[string]types.AttributeValue) ([]entities.ExchangeRequest, error) {
	var raw []exchangeItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal exchange requests: %w", err)
	}
	out := make([]entities.ExchangeRequest, 0, len(raw))
	for _, it := range raw {
		out = append(out, fromExchangeItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
