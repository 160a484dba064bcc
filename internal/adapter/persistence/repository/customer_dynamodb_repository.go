package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type CustomerDynamoRepository struct {
	ddb   DynamoDBAPI
	table string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoDBAPI, tables Tables) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, table: tables.withDefaults().Customers}
}

func (r *CustomerDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            keyOf("user_id", userID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, fmt.Errorf("unmarshal customer %s: %w", userID, err)
	}
	return entities.Customer{
		UserID:            it.UserID,
		GatewayCustomerID: it.GatewayCustomerID,
		Email:             it.Email,
		CreatedAt:         parseTime(it.CreatedAt),
	}, nil
}

// SaveIfAbsent keeps the first customer written for a user.
func (r *CustomerDynamoRepository) SaveIfAbsent(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if c.UserID == "" || c.GatewayCustomerID == "" {
		return entities.Customer{}, entities.NewValidationError("customer user id and gateway id are required")
	}
	av, err := attributevalue.MarshalMap(customerItem{
		UserID:            c.UserID,
		GatewayCustomerID: c.GatewayCustomerID,
		Email:             c.Email,
		CreatedAt:         formatTime(c.CreatedAt),
	})
	if err != nil {
		return entities.Customer{}, fmt.Errorf("marshal customer: %w", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#user_id)"),
		ExpressionAttributeNames: map[string]string{"#user_id": "user_id"},
	})
	if err == nil {
		return c, nil
	}
	var ccf *types.ConditionalCheckFailedException
	if !errors.As(err, &ccf) {
		return entities.Customer{}, err
	}
	return r.GetByUserID(ctx, c.UserID)
}
