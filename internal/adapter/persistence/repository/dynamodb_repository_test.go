package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records the requests it receives and replays canned answers.
type fakeDynamo struct {
	items     map[string]map[string]types.AttributeValue
	pages     [][]map[string]types.AttributeValue
	queries   []*dynamodb.QueryInput
	puts      []*dynamodb.PutItemInput
	updates   []*dynamodb.UpdateItemInput
	transacts []*dynamodb.TransactWriteItemsInput
	putErr    error
	updateErr error
	txErr     error
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	for _, v := range in.Key {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			return &dynamodb.GetItemOutput{Item: f.items[s.Value]}, nil
		}
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	return &dynamodb.UpdateItemOutput{}, f.updateErr
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	page := len(f.queries) - 1
	if page >= len(f.pages) {
		return &dynamodb.QueryOutput{}, nil
	}
	out := &dynamodb.QueryOutput{Items: f.pages[page]}
	if page < len(f.pages)-1 {
		out.LastEvaluatedKey = keyOf("id", "cursor")
	}
	return out, nil
}

func (f *fakeDynamo) Scan(context.Context, *dynamodb.ScanInput, ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	return &dynamodb.TransactWriteItemsOutput{}, f.txErr
}

func orderAV(t *testing.T, o entities.Order) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func canceledAt(index int, withItem bool) error {
	reasons := make([]types.CancellationReason, index+1)
	for i := range reasons {
		reasons[i] = types.CancellationReason{Code: aws.String("None")}
	}
	reasons[index].Code = aws.String("ConditionalCheckFailed")
	if withItem {
		reasons[index].Item = keyOf("id", "x")
	}
	return &types.TransactionCanceledException{Message: aws.String("canceled"), CancellationReasons: reasons}
}

func conflictAt(index int, code string) error {
	reasons := make([]types.CancellationReason, index+1)
	for i := range reasons {
		reasons[i] = types.CancellationReason{Code: aws.String("None")}
	}
	reasons[index].Code = aws.String(code)
	return &types.TransactionCanceledException{Message: aws.String("canceled"), CancellationReasons: reasons}
}

func TestDynamoUnitOfWorkCommit(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID: "o-1", UserID: "u-1", Status: entities.OrderStatusPending,
		Lines:     []entities.OrderLine{{StockLineID: "sl-1", Quantity: 2, UnitPrice: 1000}},
		CreatedAt: now, UpdatedAt: now, ExpiresAt: now.Add(30 * time.Minute),
	}

	tests := []struct {
		name    string
		txErr   error
		wantErr error
	}{
		{name: "committed", txErr: nil},
		{name: "stock line exhausted", txErr: canceledAt(0, true), wantErr: entities.ErrInsufficientStock},
		{name: "stock line missing", txErr: canceledAt(0, false), wantErr: entities.ErrNotFound},
		{name: "duplicated order", txErr: canceledAt(1, false), wantErr: entities.ErrValidation},
		{name: "stock line held by another transaction", txErr: conflictAt(0, "TransactionConflict"), wantErr: entities.ErrConcurrentModification},
		{name: "order item throttled", txErr: conflictAt(1, "ThrottlingError"), wantErr: entities.ErrConcurrentModification},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ddb := &fakeDynamo{txErr: tt.txErr}
			uow := NewDynamoUnitOfWork(ddb, Tables{})

			err := uow.Execute(context.Background(), func(tx interfaces.ITx) error {
				if err := tx.ReserveStock(context.Background(), "sl-1", 2); err != nil {
					return err
				}
				return tx.InsertOrder(context.Background(), order)
			})

			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(ddb.transacts) != 1 || len(ddb.transacts[0].TransactItems) != 2 {
				t.Fatalf("expected one transaction with two items, got %+v", ddb.transacts)
			}
			reserve := ddb.transacts[0].TransactItems[0].Update
			if reserve == nil || aws.ToString(reserve.TableName) != "stock_lines" {
				t.Fatalf("unexpected reserve item: %+v", reserve)
			}
		})
	}
}

func TestDynamoUnitOfWorkGuardedUpdate(t *testing.T) {
	paidAt := time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC)
	ddb := &fakeDynamo{txErr: canceledAt(0, true)}
	uow := NewDynamoUnitOfWork(ddb, Tables{Orders: "orders-test"})

	err := uow.Execute(context.Background(), func(tx interfaces.ITx) error {
		return tx.UpdateOrder(context.Background(), entities.Order{
			ID: "o-1", Status: entities.OrderStatusPaid, PaymentID: "p-1", PaidAt: &paidAt, UpdatedAt: paidAt,
		}, entities.OrderStatusPending)
	})
	if !errors.Is(err, entities.ErrConcurrentModification) {
		t.Fatalf("expected concurrent modification, got %v", err)
	}

	upd := ddb.transacts[0].TransactItems[0].Update
	if aws.ToString(upd.TableName) != "orders-test" || aws.ToString(upd.ConditionExpression) != "#status = :expected" {
		t.Fatalf("unexpected update: %+v", upd)
	}
	if v := upd.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS).Value; v != "PENDING" {
		t.Fatalf("expected guard on PENDING, got %s", v)
	}
	if _, ok := upd.ExpressionAttributeValues[":paid_at"]; !ok {
		t.Fatal("paid_at should be written")
	}
}

func TestDynamoUnitOfWorkSkipsEmptyAndFailedUnits(t *testing.T) {
	ddb := &fakeDynamo{}
	uow := NewDynamoUnitOfWork(ddb, Tables{})

	if err := uow.Execute(context.Background(), func(interfaces.ITx) error { return nil }); err != nil {
		t.Fatalf("empty unit: %v", err)
	}
	boom := errors.New("boom")
	err := uow.Execute(context.Background(), func(tx interfaces.ITx) error {
		_ = tx.ReleaseStock(context.Background(), "sl-1", 1)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(ddb.transacts) != 0 {
		t.Fatalf("nothing should be committed, got %d transactions", len(ddb.transacts))
	}

	err = uow.Execute(context.Background(), func(tx interfaces.ITx) error {
		for i := 0; i <= maxTransactItems; i++ {
			_ = tx.ReleaseStock(context.Background(), "sl-1", 1)
		}
		return nil
	})
	if !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error over the item limit, got %v", err)
	}
}

func TestOrderDynamoRepository(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := entities.Order{ID: "o-1", UserID: "u-1", Status: entities.OrderStatusPaid, CreatedAt: now.Add(-time.Hour), ExpiresAt: now}
	newer := entities.Order{ID: "o-2", UserID: "u-1", Status: entities.OrderStatusPending, CreatedAt: now, ExpiresAt: now.Add(30 * time.Minute),
		Lines: []entities.OrderLine{{StockLineID: "sl-1", Quantity: 1, UnitPrice: 4990}}}

	t.Run("get by id", func(t *testing.T) {
		ddb := &fakeDynamo{items: map[string]map[string]types.AttributeValue{"o-2": orderAV(t, newer)}}
		repo := NewOrderDynamoRepository(ddb, Tables{})

		got, err := repo.GetByID(context.Background(), "o-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "o-2" || len(got.Lines) != 1 || got.Lines[0].UnitPrice != 4990 || !got.ExpiresAt.Equal(newer.ExpiresAt) {
			t.Fatalf("unexpected order: %+v", got)
		}

		missing, err := repo.GetByID(context.Background(), "nope")
		if err != nil || missing.ID != "" {
			t.Fatalf("expected zero order, got %+v %v", missing, err)
		}
	})

	t.Run("list by user follows pages newest first", func(t *testing.T) {
		ddb := &fakeDynamo{pages: [][]map[string]types.AttributeValue{{orderAV(t, older)}, {orderAV(t, newer)}}}
		repo := NewOrderDynamoRepository(ddb, Tables{})

		got, err := repo.ListByUserID(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "o-2" {
			t.Fatalf("unexpected orders: %+v", got)
		}
		if len(ddb.queries) != 2 || aws.ToString(ddb.queries[0].IndexName) != "user_id-index" {
			t.Fatalf("unexpected queries: %+v", ddb.queries)
		}
	})

	t.Run("expired pending uses the status index with a limit", func(t *testing.T) {
		ddb := &fakeDynamo{pages: [][]map[string]types.AttributeValue{{orderAV(t, newer)}}}
		repo := NewOrderDynamoRepository(ddb, Tables{})

		if _, err := repo.ListExpiredPending(context.Background(), now, 25); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		q := ddb.queries[0]
		if aws.ToString(q.IndexName) != "status-index" || aws.ToInt32(q.Limit) != 25 {
			t.Fatalf("unexpected query: %+v", q)
		}
		if v := q.ExpressionAttributeValues[":now"].(*types.AttributeValueMemberN).Value; v != "1772366400000" {
			t.Fatalf("unexpected epoch bound %s", v)
		}
	})

	t.Run("attach payment ignores orders that left pending", func(t *testing.T) {
		ddb := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("failed")}}
		repo := NewOrderDynamoRepository(ddb, Tables{})

		if err := repo.AttachPayment(context.Background(), "o-1", "p-1", "pix"); err != nil {
			t.Fatalf("expected no-op, got %v", err)
		}
		if len(ddb.updates) != 1 {
			t.Fatalf("expected one update, got %d", len(ddb.updates))
		}
	})
}

func TestCustomerDynamoRepositorySaveIfAbsent(t *testing.T) {
	stored, err := attributevalue.MarshalMap(customerItem{UserID: "u-1", GatewayCustomerID: "cus-first", CreatedAt: formatTime(time.Now())})
	if err != nil {
		t.Fatal(err)
	}
	ddb := &fakeDynamo{
		items:  map[string]map[string]types.AttributeValue{"u-1": stored},
		putErr: &types.ConditionalCheckFailedException{Message: aws.String("exists")},
	}
	repo := NewCustomerDynamoRepository(ddb, Tables{})

	got, err := repo.SaveIfAbsent(context.Background(), entities.Customer{UserID: "u-1", GatewayCustomerID: "cus-second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.GatewayCustomerID != "cus-first" {
		t.Fatalf("first writer should win, got %s", got.GatewayCustomerID)
	}
	if _, err := repo.SaveIfAbsent(context.Background(), entities.Customer{UserID: "u-1"}); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStockLineDynamoRepositoryUpsertValidation(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewStockLineDynamoRepository(ddb, Tables{})

	if err := repo.Upsert(context.Background(), entities.StockLine{ID: "sl-1", Quantity: -1}); !errors.Is(err, entities.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := repo.Upsert(context.Background(), entities.StockLine{ID: "sl-1", Quantity: 3, UnitPrice: 12990}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ddb.puts) != 1 || aws.ToString(ddb.puts[0].TableName) != "stock_lines" {
		t.Fatalf("unexpected puts: %+v", ddb.puts)
	}
}
