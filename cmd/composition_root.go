package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "walt/internal/adapters/in/http"
	"walt/internal/adapters/out/distance"
	"walt/internal/adapters/out/memory"
	"walt/internal/adapters/out/postgres"
	"walt/internal/core/application/usecases/commands"
	"walt/internal/core/application/usecases/queries"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/services"
	"walt/internal/core/ports"
	"walt/internal/jobs"
	"walt/internal/seed"

	"github.com/labstack/echo/v4"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	uowFactory ports.UnitOfWorkFactory
	assigner   services.DeliveryAssigner
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) (CompositionRoot, error) {
	estimator, err := distance.NewRandomEstimator(configs.MaxDistance)
	if err != nil {
		return CompositionRoot{}, err
	}

	kernel.SetCalendar(configs.Calendar)

	return CompositionRoot{
		configs:    configs,
		uowFactory: uowFactory,
		assigner:   services.NewDeliveryAssigner(estimator),
		logger:     logger,
	}, nil
}

// OpenUnitOfWorkFactory connects the configured storage. Postgres tables are
// migrated on open; memory storage lives as long as the process.
func OpenUnitOfWorkFactory(configs Config) (ports.UnitOfWorkFactory, error) {
	if configs.Storage == StorageMemory {
		return memory.NewUnitOfWorkFactory(memory.NewStore()), nil
	}

	db, err := OpenPostgres(configs)
	if err != nil {
		return nil, err
	}

	if err = postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return postgres.NewGormUnitOfWorkFactory(db), nil
}

func OpenPostgres(configs Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

func (c *CompositionRoot) CreateCreateCityCommandHandler() commands.CreateCityCommandHandler {
	var f commands.CityUoWFactory = FuncCityUoWFactory(func() commands.CityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.directoryUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.directoryUoWFactory())
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.directoryUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderAndAssignDriverCommandHandler() commands.CreateOrderAndAssignDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderAndAssignDriverCommandHandler(f, c.assigner, c.logger)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.uowFactory.Create().DeliveryRepository())
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.uowFactory.Create().DriverRepository())
}

func (c *CompositionRoot) CreateGetDriverRankReportQueryHandler() queries.GetDriverRankReportQueryHandler {
	return queries.NewGetDriverRankReportQueryHandler(c.uowFactory.Create().DeliveryRepository())
}

func (c *CompositionRoot) CreateSeedHandlers() seed.Handlers {
	return seed.Handlers{
		CreateCity:       c.CreateCreateCityCommandHandler(),
		CreateDriver:     c.CreateCreateDriverCommandHandler(),
		CreateCustomer:   c.CreateCreateCustomerCommandHandler(),
		CreateRestaurant: c.CreateCreateRestaurantCommandHandler(),
	}
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateCity:          c.CreateCreateCityCommandHandler(),
		CreateDriver:        c.CreateCreateDriverCommandHandler(),
		CreateCustomer:      c.CreateCreateCustomerCommandHandler(),
		CreateRestaurant:    c.CreateCreateRestaurantCommandHandler(),
		Assign:              c.CreateCreateOrderAndAssignDriverCommandHandler(),
		GetDeliveries:       c.CreateGetDeliveriesQueryHandler(),
		GetAvailableDrivers: c.CreateGetAvailableDriversQueryHandler(),
		GetDriverRankReport: c.CreateGetDriverRankReportQueryHandler(),
	})
	return httpadapter.NewRouter(server)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDriverRankReportQueryHandler(), c.configs.ReportCron, c.logger)
}

func (c *CompositionRoot) directoryUoWFactory() commands.DirectoryUoWFactory {
	return FuncDirectoryUoWFactory(func() commands.DirectoryUoW {
		return c.uowFactory.Create()
	})
}

type FuncCityUoWFactory func() commands.CityUoW

func (f FuncCityUoWFactory) Create() commands.CityUoW {
	return f()
}

type FuncDirectoryUoWFactory func() commands.DirectoryUoW

func (f FuncDirectoryUoWFactory) Create() commands.DirectoryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
