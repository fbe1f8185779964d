// Package http exposes the order placement and directory use cases over
// REST with echo. Requests are checked against the embedded OpenAPI
// document before they reach a handler.
package http

import (
	"errors"
	"net/http"

	"walt/internal/core/application/usecases/commands"
	"walt/internal/core/application/usecases/queries"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCityHandler       commands.CreateCityCommandHandler
	createDriverHandler     commands.CreateDriverCommandHandler
	createCustomerHandler   commands.CreateCustomerCommandHandler
	createRestaurantHandler commands.CreateRestaurantCommandHandler
	assignHandler           commands.CreateOrderAndAssignDriverCommandHandler

	// Query handlers
	getDeliveriesHandler       queries.GetDeliveriesQueryHandler
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler
	getDriverRankReportHandler queries.GetDriverRankReportQueryHandler
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	CreateCity          commands.CreateCityCommandHandler
	CreateDriver        commands.CreateDriverCommandHandler
	CreateCustomer      commands.CreateCustomerCommandHandler
	CreateRestaurant    commands.CreateRestaurantCommandHandler
	Assign              commands.CreateOrderAndAssignDriverCommandHandler
	GetDeliveries       queries.GetDeliveriesQueryHandler
	GetAvailableDrivers queries.GetAvailableDriversQueryHandler
	GetDriverRankReport queries.GetDriverRankReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createCityHandler:          h.CreateCity,
		createDriverHandler:        h.CreateDriver,
		createCustomerHandler:      h.CreateCustomer,
		createRestaurantHandler:    h.CreateRestaurant,
		assignHandler:              h.Assign,
		getDeliveriesHandler:       h.GetDeliveries,
		getAvailableDriversHandler: h.GetAvailableDrivers,
		getDriverRankReportHandler: h.GetDriverRankReport,
	}
}

// CreateCity handles POST /api/v1/cities - registers a city.
func (s *Server) CreateCity(ctx echo.Context) error {
	var body NewCity
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCityCommand(body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid city data: "+err.Error())
	}

	if err = s.createCityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err, "Failed to create city")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.CityID().Bytes()})
}

// CreateDriver handles POST /api/v1/drivers - registers a driver in a city.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cityID, err := toKernelID(body.CityID)
	if err != nil {
		return badRequest(ctx, "Invalid city id: "+err.Error())
	}

	cmd, err := commands.NewCreateDriverCommand(body.Name, cityID)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if err = s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err, "Failed to create driver")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.DriverID().Bytes()})
}

// CreateCustomer handles POST /api/v1/customers - registers a customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cityID, err := toKernelID(body.CityID)
	if err != nil {
		return badRequest(ctx, "Invalid city id: "+err.Error())
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, cityID, body.Description)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if err = s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err, "Failed to create customer")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.CustomerID().Bytes()})
}

// CreateRestaurant handles POST /api/v1/restaurants - registers a restaurant.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var body NewRestaurant
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cityID, err := toKernelID(body.CityID)
	if err != nil {
		return badRequest(ctx, "Invalid city id: "+err.Error())
	}

	cmd, err := commands.NewCreateRestaurantCommand(body.Name, cityID, body.Description)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant data: "+err.Error())
	}

	if err = s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handleError(ctx, err, "Failed to create restaurant")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.RestaurantID().Bytes()})
}

// CreateDelivery handles POST /api/v1/deliveries - places an order and assigns a driver.
// Rejected orders answer 422 with the reason in the message.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body NewDelivery
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := toKernelID(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	restaurantID, err := toKernelID(body.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderAndAssignDriverCommand(customerID, restaurantID, body.DeliveryTime)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	assigned, err := s.assignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handleError(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, Delivery{
		ID:           assigned.ID().Bytes(),
		DriverID:     assigned.DriverID().Bytes(),
		RestaurantID: assigned.RestaurantID().Bytes(),
		CustomerID:   assigned.CustomerID().Bytes(),
		DeliveryTime: assigned.DeliveryTime(),
		Distance:     assigned.Distance().Kilometres(),
	})
}

// GetDeliveries handles GET /api/v1/deliveries - lists every delivery.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	deliveries, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewGetDeliveriesQuery())
	if err != nil {
		return handleError(ctx, err, "Failed to retrieve deliveries")
	}

	response := make([]Delivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = Delivery{
			ID:           d.ID.Bytes(),
			DriverID:     d.DriverID.Bytes(),
			RestaurantID: d.RestaurantID.Bytes(),
			CustomerID:   d.CustomerID.Bytes(),
			DeliveryTime: d.DeliveryTime,
			Distance:     d.Distance,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAvailableDrivers handles GET /api/v1/drivers/available - drivers free at the given hour.
func (s *Server) GetAvailableDrivers(ctx echo.Context, params GetAvailableDriversParams) error {
	cityID, err := toKernelID(params.City)
	if err != nil {
		return badRequest(ctx, "Invalid city id: "+err.Error())
	}

	query, err := queries.NewGetAvailableDriversQuery(cityID, params.Time)
	if err != nil {
		return badRequest(ctx, "Invalid availability query: "+err.Error())
	}

	drivers, err := s.getAvailableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err, "Failed to retrieve available drivers")
	}

	response := make([]AvailableDriver, len(drivers))
	for i, d := range drivers {
		response[i] = AvailableDriver{
			ID:         d.DriverID.Bytes(),
			Name:       d.Name,
			Deliveries: d.Deliveries,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverRankReport handles GET /api/v1/reports/driver-rank - drivers by total distance.
// With a city only drivers of that city with at least one delivery are listed.
func (s *Server) GetDriverRankReport(ctx echo.Context, params GetDriverRankReportParams) error {
	query := queries.NewGetDriverRankReportQuery()
	if params.City != nil {
		cityID, err := toKernelID(*params.City)
		if err != nil {
			return badRequest(ctx, "Invalid city id: "+err.Error())
		}

		query, err = queries.NewGetDriverRankReportByCityQuery(cityID)
		if err != nil {
			return badRequest(ctx, "Invalid report query: "+err.Error())
		}
	}

	report, err := s.getDriverRankReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handleError(ctx, err, "Failed to build driver rank report")
	}

	response := make([]DriverRank, len(report))
	for i, row := range report {
		response[i] = DriverRank{
			DriverID:      row.DriverID.Bytes(),
			Name:          row.DriverName,
			CityID:        row.CityID.Bytes(),
			TotalDistance: row.TotalDistance,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// handleError maps use case errors to status codes. Unexpected errors are
// logged and answered with a generic message.
func handleError(ctx echo.Context, err error, fallback string) error {
	status := http.StatusInternalServerError
	message := fallback

	switch {
	case errors.Is(err, commands.ErrCityMismatch), errors.Is(err, commands.ErrNoAvailableDrivers):
		status, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, commands.ErrCityAlreadyExists):
		status, message = http.StatusConflict, err.Error()
	default:
		ctx.Logger().Error(err)
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

func toKernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
