package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeTableCreator struct {
	existing map[string]bool
	inputs   []*dynamodb.CreateTableInput
	failOn   string
}

func (f *fakeTableCreator) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.inputs = append(f.inputs, in)
	name := aws.ToString(in.TableName)
	if name == f.failOn {
		return nil, errors.New("throttled")
	}
	if f.existing[name] {
		return nil, &types.ResourceInUseException{Message: aws.String("exists")}
	}
	return &dynamodb.CreateTableOutput{}, nil
}

func TestEnsureTables(t *testing.T) {
	t.Run("skips existing tables", func(t *testing.T) {
		fake := &fakeTableCreator{existing: map[string]bool{"orders": true}}
		created, err := EnsureTables(context.Background(), fake, Tables{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fake.inputs) != 4 || len(created) != 3 {
			t.Fatalf("expected 4 attempts and 3 creations, got %d/%v", len(fake.inputs), created)
		}

		orders := fake.inputs[0]
		if len(orders.GlobalSecondaryIndexes) != 2 {
			t.Fatalf("orders table needs user and status indexes")
		}
		status := orders.GlobalSecondaryIndexes[1]
		if aws.ToString(status.IndexName) != orderStatusIndex || len(status.KeySchema) != 2 ||
			aws.ToString(status.KeySchema[1].AttributeName) != "expires_at_epoch" {
			t.Fatalf("unexpected status index: %+v", status)
		}
	})

	t.Run("stops on failure", func(t *testing.T) {
		fake := &fakeTableCreator{failOn: "stock_lines"}
		created, err := EnsureTables(context.Background(), fake, Tables{})
		if err == nil || len(created) != 1 {
			t.Fatalf("expected failure after orders, got %v %v", created, err)
		}
	})
}
