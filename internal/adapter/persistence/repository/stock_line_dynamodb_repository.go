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
)

type StockLineDynamoRepository struct {
	ddb   DynamoDBAPI
	table string
}

var _ interfaces.IStockLineRepository = (*StockLineDynamoRepository)(nil)

func NewStockLineDynamoRepository(ddb DynamoDBAPI, tables Tables) *StockLineDynamoRepository {
	return &StockLineDynamoRepository{ddb: ddb, table: tables.withDefaults().StockLines}
}

func (r *StockLineDynamoRepository) GetByID(ctx context.Context, id string) (entities.StockLine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            keyOf("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StockLine{}, err
	}
	if len(out.Item) == 0 {
		return entities.StockLine{}, nil
	}

	var it stockLineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StockLine{}, fmt.Errorf("unmarshal stock line %s: %w", id, err)
	}
	return fromStockLineItem(it), nil
}

func (r *StockLineDynamoRepository) List(ctx context.Context) ([]entities.StockLine, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.table)})
	if err != nil {
		return nil, err
	}
	var raw []stockLineItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal stock lines: %w", err)
	}
	out := make([]entities.StockLine, 0, len(raw))
	for _, it := range raw {
		out = append(out, fromStockLineItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Upsert replaces the whole stock line, quantity included. It is meant for
// catalog imports, not for order flows.
func (r *StockLineDynamoRepository) Upsert(ctx context.Context, line entities.StockLine) error {
	if line.ID == "" {
		return entities.NewValidationError("stock line id is required")
	}
	if line.Quantity < 0 {
		return entities.NewValidationError("stock line quantity must not be negative")
	}
	av, err := attributevalue.MarshalMap(toStockLineItem(line))
	if err != nil {
		return fmt.Errorf("marshal stock line: %w", err)
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	return err
}
