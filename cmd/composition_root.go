package cmd

import (
	"log/slog"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use-case handlers. It is the only
// place that knows concrete implementations; everything below it depends on
// ports.
type CompositionRoot struct {
	gormDB   *gorm.DB
	repo     ports.OrderRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewCompositionRoot creates the application object graph from its
// infrastructure collaborators.
func NewCompositionRoot(gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:   gormDB,
		repo:     orderrepo.NewGormOrderRepository(gormDB),
		notifier: notifier,
		logger:   logger,
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.repo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.repo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateDeclineOrderCommandHandler() commands.DeclineOrderCommandHandler {
	return commands.NewDeclineOrderCommandHandler(c.repo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateReadyOrderCommandHandler() commands.ReadyOrderCommandHandler {
	return commands.NewReadyOrderCommandHandler(c.repo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAssignDelivererCommandHandler() commands.AssignDelivererCommandHandler {
	return commands.NewAssignDelivererCommandHandler(c.repo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateBeginDeliveryCommandHandler() commands.BeginDeliveryCommandHandler {
	return commands.NewBeginDeliveryCommandHandler(c.repo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.repo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateModifyOrderCommandHandler() commands.ModifyOrderCommandHandler {
	return commands.NewModifyOrderCommandHandler(c.repo, c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateSubmitOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateDeclineOrderCommandHandler(),
		c.CreateReadyOrderCommandHandler(),
		c.CreateAssignDelivererCommandHandler(),
		c.CreateBeginDeliveryCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateModifyOrderCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
	)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.CreateGetOrderStatsQueryHandler(), c.logger)
}
