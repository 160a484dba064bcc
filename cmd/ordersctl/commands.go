package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"storefront_orders/internal/bootstrap"
	"storefront_orders/internal/domain/entities"

	"github.com/spf13/cobra"
)

// operatorID is the actor maintenance commands run as. It is registered as a
// superuser for the lifetime of the command only.
const operatorID = "ordersctl"

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables of the configured store",
		Long: `Create the tables and indexes of the configured store.

For mysql and sqlite this runs the gorm auto-migration. For dynamodb it
creates the orders, stock lines, exchanges and customers tables with their
secondary indexes; existing tables are left as they are.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := bootstrap.OpenStore(cmd.Context(), cfg.Store)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema ready (%s)\n", store.Driver)
			return nil
		},
	}
}

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Expire every PENDING order whose hold window is over",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			res, err := app.Sweeper.SweepOnce(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "candidates=%d expired=%d skipped=%d failed=%d\n", res.Candidates, res.Expired, res.Skipped, res.Failed)
			return nil
		},
	}
}

func reconcileCmd() *cobra.Command {
	var orderIDs []string
	var allPending bool

	cmd := &cobra.Command{
		Use:   "reconcile [order-id...]",
		Short: "Poll the gateway for PENDING orders and confirm approved payments",
		Long: `Poll the payment gateway for the given orders, or for every PENDING
order with --all-pending, and confirm the ones whose latest payment was
approved. This is the same path the payment-status endpoint uses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			orderIDs = append(orderIDs, args...)
			if len(orderIDs) == 0 && !allPending {
				return fmt.Errorf("pass order ids or --all-pending")
			}

			app, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if allPending {
				pending, err := app.Store.Orders.ListByStatus(cmd.Context(), entities.OrderStatusPending)
				if err != nil {
					return err
				}
				for _, o := range pending {
					orderIDs = append(orderIDs, o.ID)
				}
			}

			operator := entities.Actor{UserID: operatorID}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ORDER\tSTATUS\tPAYMENT\tPAYMENT STATUS")
			failed := 0
			for _, id := range orderIDs {
				view, err := app.Reconciliation.PollPaymentStatus(cmd.Context(), operator, id)
				if err != nil {
					failed++
					fmt.Fprintf(w, "%s\terror: %v\t\t\n", id, err)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, view.OrderStatus, view.PaymentID, view.PaymentStatus)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d orders failed", failed, len(orderIDs))
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&orderIDs, "order", nil, "order id to reconcile (repeatable)")
	cmd.Flags().BoolVar(&allPending, "all-pending", false, "reconcile every PENDING order")
	return cmd
}

func openApp(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cfg.Auth.Superusers = append(cfg.Auth.Superusers, operatorID)
	return bootstrap.New(ctx, cfg)
}
