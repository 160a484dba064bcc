package repository

import (
	"context"
	"errors"
	"fmt"

	"storefront_orders/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableCreator is the slice of the DynamoDB client used to provision tables.
type TableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ TableCreator = (*dynamodb.Client)(nil)

// EnsureTables creates every table and index the repositories query. Tables
// that already exist are left untouched. Meant for DynamoDB Local and test
// stacks; production tables are provisioned with the infrastructure.
func EnsureTables(ctx context.Context, ddb TableCreator, tables Tables) ([]string, error) {
	tables = tables.withDefaults()
	var created []string
	for _, in := range tableDefinitions(tables) {
		_, err := ddb.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		switch {
		case errors.As(err, &inUse):
			logger.Debug("[database] table already exists", zap.String("table", aws.ToString(in.TableName)))
		case err != nil:
			return created, fmt.Errorf("create table %s: %w", aws.ToString(in.TableName), err)
		default:
			created = append(created, aws.ToString(in.TableName))
			logger.Info("[database] table created", zap.String("table", aws.ToString(in.TableName)))
		}
	}
	return created, nil
}

func tableDefinitions(t Tables) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(t.Orders),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("id", "S", "user_id", "S", "status", "S", "expires_at_epoch", "N"),
			KeySchema:            hashKey("id"),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				gsi(orderUserIndex, "user_id", ""),
				gsi(orderStatusIndex, "status", "expires_at_epoch"),
			},
		},
		{
			TableName:            aws.String(t.StockLines),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("id", "S"),
			KeySchema:            hashKey("id"),
		},
		{
			TableName:            aws.String(t.Exchanges),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("id", "S", "order_id", "S", "user_id", "S"),
			KeySchema:            hashKey("id"),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				gsi(exchangeOrderIndex, "order_id", ""),
				gsi(exchangeUserIndex, "user_id", ""),
			},
		},
		{
			TableName:            aws.String(t.Customers),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: attrs("user_id", "S"),
			KeySchema:            hashKey("user_id"),
		},
	}
}

// attrs takes name/type pairs.
func attrs(pairs ...string) []types.AttributeDefinition {
	out := make([]types.AttributeDefinition, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, types.AttributeDefinition{
			AttributeName: aws.String(pairs[i]),
			AttributeType: types.ScalarAttributeType(pairs[i+1]),
		})
	}
	return out
}

func hashKey(name string) []types.KeySchemaElement {
	return []types.KeySchemaElement{{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}}
}

func gsi(name, hash, rangeKey string) types.GlobalSecondaryIndex {
	keys := hashKey(hash)
	if rangeKey != "" {
		keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(rangeKey), KeyType: types.KeyTypeRange})
	}
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(name),
		KeySchema:  keys,
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}
