package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the DynamoDB limit for a single TransactWriteItems call.
const maxTransactItems = 100

// DynamoUnitOfWork buffers the writes of a unit and commits them with one
// TransactWriteItems call.
type DynamoUnitOfWork struct {
	ddb    DynamoDBAPI
	tables Tables
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func NewDynamoUnitOfWork(ddb DynamoDBAPI, tables Tables) *DynamoUnitOfWork {
	return &DynamoUnitOfWork{ddb: ddb, tables: tables.withDefaults()}
}

func (u *DynamoUnitOfWork) Execute(ctx context.Context, fn func(tx interfaces.ITx) error) error {
	tx := &dynamoTx{tables: u.tables}
	if err := fn(tx); err != nil {
		return err
	}
	if tx.err != nil {
		return tx.err
	}
	if len(tx.items) == 0 {
		return nil
	}
	if len(tx.items) > maxTransactItems {
		return entities.NewValidationError(fmt.Sprintf("unit of work has %d writes, limit is %d", len(tx.items), maxTransactItems))
	}

	_, err := u.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx.items})
	if err == nil {
		return nil
	}

	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		for i, reason := range canceled.CancellationReasons {
			if aws.ToString(reason.Code) == "ConditionalCheckFailed" && i < len(tx.onFail) {
				return tx.onFail[i](reason)
			}
		}
		// Another transaction held one of the items; the caller re-reads and retries.
		for i, reason := range canceled.CancellationReasons {
			switch aws.ToString(reason.Code) {
			case "TransactionConflict", "ThrottlingError":
				return entities.NewConcurrentModificationError(itemTable(tx.items, i), itemID(tx.items, i))
			}
		}
	}
	return fmt.Errorf("commit unit of work: %w", err)
}

func itemTable(items []types.TransactWriteItem, i int) string {
	if i >= len(items) {
		return "transaction"
	}
	switch it := items[i]; {
	case it.Update != nil:
		return aws.ToString(it.Update.TableName)
	case it.Put != nil:
		return aws.ToString(it.Put.TableName)
	}
	return "transaction"
}

func itemID(items []types.TransactWriteItem, i int) string {
	if i >= len(items) || items[i].Update == nil {
		return ""
	}
	if id, ok := items[i].Update.Key["id"].(*types.AttributeValueMemberS); ok {
		return id.Value
	}
	return ""
}

// dynamoTx collects transaction items. Condition failures are only known at
// commit time, so every item carries the error it maps to.
type dynamoTx struct {
	tables Tables
	items  []types.TransactWriteItem
	onFail []func(types.CancellationReason) error
	err    error
}

var _ interfaces.ITx = (*dynamoTx)(nil)

func (t *dynamoTx) add(item types.TransactWriteItem, onFail func(types.CancellationReason) error) {
	t.items = append(t.items, item)
	t.onFail = append(t.onFail, onFail)
}

func quantityValue(q int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(q)}
}

func (t *dynamoTx) ReserveStock(_ context.Context, stockLineID string, quantity int) error {
	t.add(types.TransactWriteItem{
		Update: &types.Update{
			TableName:                           aws.String(t.tables.StockLines),
			Key:                                 keyOf("id", stockLineID),
			UpdateExpression:                    aws.String("SET #quantity = #quantity - :q"),
			ConditionExpression:                 aws.String("attribute_exists(#id) AND #quantity >= :q"),
			ExpressionAttributeNames:            map[string]string{"#id": "id", "#quantity": "quantity"},
			ExpressionAttributeValues:           map[string]types.AttributeValue{":q": quantityValue(quantity)},
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		},
	}, func(reason types.CancellationReason) error {
		if len(reason.Item) == 0 {
			return entities.NewNotFoundError("stock_line", stockLineID)
		}
		return entities.NewInsufficientStockError(stockLineID, quantity)
	})
	return nil
}

func (t *dynamoTx) ReleaseStock(_ context.Context, stockLineID string, quantity int) error {
	t.add(types.TransactWriteItem{
		Update: &types.Update{
			TableName:                 aws.String(t.tables.StockLines),
			Key:                       keyOf("id", stockLineID),
			UpdateExpression:          aws.String("ADD #quantity :q"),
			ConditionExpression:       aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames:  map[string]string{"#id": "id", "#quantity": "quantity"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":q": quantityValue(quantity)},
		},
	}, func(types.CancellationReason) error {
		return entities.NewNotFoundError("stock_line", stockLineID)
	})
	return nil
}

func (t *dynamoTx) InsertOrder(_ context.Context, order entities.Order) error {
	av, err := attributevalue.MarshalMap(toOrderItem(order))
	if err != nil {
		t.err = fmt.Errorf("marshal order: %w", err)
		return t.err
	}
	t.add(types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(t.tables.Orders),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}, func(types.CancellationReason) error {
		return &entities.DomainError{Kind: entities.ErrValidation, Entity: "order", ID: order.ID, Reason: "already exists"}
	})
	return nil
}

func (t *dynamoTx) UpdateOrder(_ context.Context, order entities.Order, expected entities.OrderStatus) error {
	set := "SET #status = :status, #updated_at = :updated_at"
	names := map[string]string{"#status": "status", "#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(order.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(order.UpdatedAt)},
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
	}
	if order.PaymentID != "" {
		set += ", #payment_id = :payment_id"
		names["#payment_id"] = "payment_id"
		values[":payment_id"] = &types.AttributeValueMemberS{Value: order.PaymentID}
	}
	if order.PaymentType != "" {
		set += ", #payment_type = :payment_type"
		names["#payment_type"] = "payment_type"
		values[":payment_type"] = &types.AttributeValueMemberS{Value: order.PaymentType}
	}
	if order.PaidAt != nil {
		set += ", #paid_at = :paid_at"
		names["#paid_at"] = "paid_at"
		values[":paid_at"] = &types.AttributeValueMemberS{Value: formatTime(*order.PaidAt)}
	}

	t.add(types.TransactWriteItem{
		Update: &types.Update{
			TableName:                 aws.String(t.tables.Orders),
			Key:                       keyOf("id", order.ID),
			UpdateExpression:          aws.String(set),
			ConditionExpression:       aws.String("#status = :expected"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		},
	}, func(types.CancellationReason) error {
		return entities.NewConcurrentModificationError("order", order.ID)
	})
	return nil
}

func (t *dynamoTx) InsertExchange(_ context.Context, exchange entities.ExchangeRequest) error {
	av, err := attributevalue.MarshalMap(toExchangeItem(exchange))
	if err != nil {
		t.err = fmt.Errorf("marshal exchange request: %w", err)
		return t.err
	}
	t.add(types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(t.tables.Exchanges),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}, func(types.CancellationReason) error {
		return &entities.DomainError{Kind: entities.ErrValidation, Entity: "exchange_request", ID: exchange.ID, Reason: "already exists"}
	})
	return nil
}

func (t *dynamoTx) UpdateExchange(_ context.Context, exchange entities.ExchangeRequest, expected entities.ExchangeStatus) error {
	set := "SET #status = :status, #admin_notes = :admin_notes"
	names := map[string]string{"#status": "status", "#admin_notes": "admin_notes"}
	values := map[string]types.AttributeValue{
		":status":      &types.AttributeValueMemberS{Value: string(exchange.Status)},
		":admin_notes": &types.AttributeValueMemberS{Value: exchange.AdminNotes},
		":expected":    &types.AttributeValueMemberS{Value: string(expected)},
	}
	if exchange.ResolvedAt != nil {
		set += ", #resolved_at = :resolved_at"
		names["#resolved_at"] = "resolved_at"
		values[":resolved_at"] = &types.AttributeValueMemberS{Value: formatTime(*exchange.ResolvedAt)}
	}

	t.add(types.TransactWriteItem{
		Update: &types.Update{
			TableName:                 aws.String(t.tables.Exchanges),
			Key:                       keyOf("id", exchange.ID),
			UpdateExpression:          aws.String(set),
			ConditionExpression:       aws.String("#status = :expected"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		},
	}, func(types.CancellationReason) error {
		return entities.NewConcurrentModificationError("exchange_request", exchange.ID)
	})
	return nil
}
