package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

//go:embed openapi.yaml
var openapiDocument []byte

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewCity struct {
	Name string `json:"name"`
}

type NewDriver struct {
	Name   string             `json:"name"`
	CityID openapi_types.UUID `json:"cityId"`
}

type NewCustomer struct {
	Name        string             `json:"name"`
	CityID      openapi_types.UUID `json:"cityId"`
	Description string             `json:"description,omitempty"`
}

type NewRestaurant struct {
	Name        string             `json:"name"`
	CityID      openapi_types.UUID `json:"cityId"`
	Description string             `json:"description,omitempty"`
}

type NewDelivery struct {
	CustomerID   openapi_types.UUID `json:"customerId"`
	RestaurantID openapi_types.UUID `json:"restaurantId"`
	DeliveryTime time.Time          `json:"deliveryTime"`
}

type Created struct {
	ID openapi_types.UUID `json:"id"`
}

type Delivery struct {
	ID           openapi_types.UUID `json:"id"`
	DriverID     openapi_types.UUID `json:"driverId"`
	RestaurantID openapi_types.UUID `json:"restaurantId"`
	CustomerID   openapi_types.UUID `json:"customerId"`
	DeliveryTime time.Time          `json:"deliveryTime"`
	Distance     float64            `json:"distance"`
}

type AvailableDriver struct {
	ID         openapi_types.UUID `json:"id"`
	Name       string             `json:"name"`
	Deliveries int                `json:"deliveries"`
}

type DriverRank struct {
	DriverID      openapi_types.UUID `json:"driverId"`
	Name          string             `json:"name"`
	CityID        openapi_types.UUID `json:"cityId"`
	TotalDistance int64              `json:"totalDistance"`
}

// GetAvailableDriversParams defines parameters for GetAvailableDrivers.
type GetAvailableDriversParams struct {
	City openapi_types.UUID `form:"city" json:"city"`
	Time time.Time          `form:"time" json:"time"`
}

// GetDriverRankReportParams defines parameters for GetDriverRankReport.
type GetDriverRankReportParams struct {
	City *openapi_types.UUID `form:"city,omitempty" json:"city,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /api/v1/cities)
	CreateCity(ctx echo.Context) error
	// (POST /api/v1/drivers)
	CreateDriver(ctx echo.Context) error
	// (GET /api/v1/drivers/available)
	GetAvailableDrivers(ctx echo.Context, params GetAvailableDriversParams) error
	// (POST /api/v1/customers)
	CreateCustomer(ctx echo.Context) error
	// (POST /api/v1/restaurants)
	CreateRestaurant(ctx echo.Context) error
	// (POST /api/v1/deliveries)
	CreateDelivery(ctx echo.Context) error
	// (GET /api/v1/deliveries)
	GetDeliveries(ctx echo.Context) error
	// (GET /api/v1/reports/driver-rank)
	GetDriverRankReport(ctx echo.Context, params GetDriverRankReportParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateCity(ctx echo.Context) error {
	return w.Handler.CreateCity(ctx)
}

func (w *ServerInterfaceWrapper) CreateDriver(ctx echo.Context) error {
	return w.Handler.CreateDriver(ctx)
}

func (w *ServerInterfaceWrapper) GetAvailableDrivers(ctx echo.Context) error {
	var params GetAvailableDriversParams

	err := runtime.BindQueryParameter("form", true, true, "city", ctx.QueryParams(), &params.City)
	if err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter city: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, true, "time", ctx.QueryParams(), &params.Time)
	if err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter time: %s", err))
	}

	return w.Handler.GetAvailableDrivers(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

func (w *ServerInterfaceWrapper) CreateRestaurant(ctx echo.Context) error {
	return w.Handler.CreateRestaurant(ctx)
}

func (w *ServerInterfaceWrapper) CreateDelivery(ctx echo.Context) error {
	return w.Handler.CreateDelivery(ctx)
}

func (w *ServerInterfaceWrapper) GetDeliveries(ctx echo.Context) error {
	return w.Handler.GetDeliveries(ctx)
}

func (w *ServerInterfaceWrapper) GetDriverRankReport(ctx echo.Context) error {
	var params GetDriverRankReportParams

	err := runtime.BindQueryParameter("form", true, false, "city", ctx.QueryParams(), &params.City)
	if err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter city: %s", err))
	}

	return w.Handler.GetDriverRankReport(ctx, params)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/api/v1/cities", wrapper.CreateCity)
	router.POST("/api/v1/drivers", wrapper.CreateDriver)
	router.GET("/api/v1/drivers/available", wrapper.GetAvailableDrivers)
	router.POST("/api/v1/customers", wrapper.CreateCustomer)
	router.POST("/api/v1/restaurants", wrapper.CreateRestaurant)
	router.POST("/api/v1/deliveries", wrapper.CreateDelivery)
	router.GET("/api/v1/deliveries", wrapper.GetDeliveries)
	router.GET("/api/v1/reports/driver-rank", wrapper.GetDriverRankReport)
}

// GetSwagger parses the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}

	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("OpenAPI document is invalid: %w", err)
	}

	return doc, nil
}

// DocumentHandler serves the embedded OpenAPI document as is.
func DocumentHandler(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", openapiDocument)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
