// Package bootstrap assembles the service from configuration. Both the API
// binary and ordersctl build on it so they share one wiring.
package bootstrap

import (
	"context"
	"fmt"

	"storefront_orders/internal/adapter/persistence/repository"
	"storefront_orders/internal/adapter/persistence/sqlstore"
	"storefront_orders/internal/config"
	"storefront_orders/internal/infrastructure/database"
	"storefront_orders/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"gorm.io/gorm"
)

// Store is one persistence engine behind the repository interfaces.
type Store struct {
	Driver     string
	Orders     interfaces.IOrderRepository
	StockLines interfaces.IStockLineRepository
	Exchanges  interfaces.IExchangeRepository
	Customers  interfaces.ICustomerRepository
	UnitOfWork interfaces.IUnitOfWork

	// Exactly one of these is set, depending on the driver.
	SQL    *gorm.DB
	Dynamo *dynamodb.Client
	Tables repository.Tables

	ping  func(ctx context.Context) error
	close func() error
}

func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Migrate creates the schema of the selected engine.
func (s *Store) Migrate(ctx context.Context) error {
	if s.SQL != nil {
		return sqlstore.AutoMigrate(s.SQL.WithContext(ctx))
	}
	_, err := repository.EnsureTables(ctx, s.Dynamo, s.Tables)
	return err
}

// OpenStore connects the engine selected by store.driver.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	switch cfg.Driver {
	case "dynamodb":
		return openDynamoStore(ctx, cfg.DynamoDB)
	case "mysql", "sqlite":
		return openSQLStore(cfg)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

func openDynamoStore(ctx context.Context, cfg config.DynamoDBConfig) (*Store, error) {
	client, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
		Region:          cfg.Region,
		Endpoint:        cfg.Endpoint,
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
	})
	if err != nil {
		return nil, err
	}
	tables := repository.Tables{
		Orders:     cfg.OrdersTable,
		StockLines: cfg.StockTable,
		Exchanges:  cfg.ExchangesTable,
		Customers:  cfg.CustomersTable,
	}
	return &Store{
		Driver:     "dynamodb",
		Orders:     repository.NewOrderDynamoRepository(client, tables),
		StockLines: repository.NewStockLineDynamoRepository(client, tables),
		Exchanges:  repository.NewExchangeDynamoRepository(client, tables),
		Customers:  repository.NewCustomerDynamoRepository(client, tables),
		UnitOfWork: repository.NewDynamoUnitOfWork(client, tables),
		Dynamo:     client,
		Tables:     tables,
		ping: func(ctx context.Context) error {
			_, err := client.ListTables(ctx, &dynamodb.ListTablesInput{Limit: aws.Int32(1)})
			return err
		},
	}, nil
}

func openSQLStore(cfg config.StoreConfig) (*Store, error) {
	db, err := database.OpenSQL(database.SQLOptions{
		Driver:          cfg.Driver,
		DSN:             cfg.SQL.DSN,
		MaxOpenConns:    cfg.SQL.MaxOpenConns,
		MaxIdleConns:    cfg.SQL.MaxIdleConns,
		ConnMaxLifetime: cfg.SQL.ConnMaxLifetime,
		LogLevel:        cfg.SQL.LogLevel,
	})
	if err != nil {
		return nil, err
	}
	if cfg.SQL.AutoMigrate {
		if err := sqlstore.AutoMigrate(db); err != nil {
			return nil, err
		}
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return &Store{
		Driver:     cfg.Driver,
		Orders:     sqlstore.NewOrderRepository(db),
		StockLines: sqlstore.NewStockLineRepository(db),
		Exchanges:  sqlstore.NewExchangeRepository(db),
		Customers:  sqlstore.NewCustomerRepository(db),
		UnitOfWork: sqlstore.NewUnitOfWork(db),
		SQL:        db,
		ping:       sqlDB.PingContext,
		close:      sqlDB.Close,
	}, nil
}
