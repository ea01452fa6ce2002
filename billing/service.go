package billing

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/billing/business/bill"
	"encore.app/billing/business/order"
	"encore.app/billing/domain"
	"encore.app/billing/repository"
	"encore.app/billing/repository/bills"
	"encore.app/billing/repository/orders"
	"encore.app/billing/workflow"
)

const (
	taskQueue      = "table-billing"
	restaurantName = "Hotel Annapurna"
)

var restaurantDB = sqldb.NewDatabase("restaurant", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

//encore:service
type Service struct {
	orders   order.Business
	business bill.Business
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(restaurantDB)
	repo := repository.NewRepository(pgxdb)
	ledger := domain.NewLedger(pgxdb, orders.New(pgxdb), bills.New(pgxdb), rlog.With("component", "ledger"))

	orderBusiness := order.NewOrderBusiness(repo.Menus, repo.Orders, rlog.With("component", "order"))
	billBusiness := bill.NewBillBusiness(repo.Bills, repo.Orders, ledger, rlog.With("component", "bill"))

	c, err := client.Dial(client.Options{
		HostPort:  envOr("TEMPORAL_HOST", client.DefaultHostPort),
		Namespace: envOr("TEMPORAL_NAMESPACE", client.DefaultNamespace),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	w := worker.New(c, taskQueue, worker.Options{})
	workflow.SetActivityDependencies(billBusiness)
	w.RegisterWorkflow(workflow.TableSession)
	w.RegisterActivity(workflow.CalculateBillActivity)

	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}
	rlog.Info("billing service initialized", "task_queue", taskQueue)

	return &Service{
		orders:   orderBusiness,
		business: billBusiness,
		temporal: c,
		worker:   w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
