package queries

import (
	"errors"

	"walt/internal/core/domain/model/kernel"
	"walt/internal/pkg/guard"
)

var ErrGetDriverRankReportQueryIsNotConstructed = errors.New(
	"GetDriverRankReportQuery must be created via NewGetDriverRankReportQuery constructor",
)

// GetDriverRankReportQuery ranks drivers by the total distance they drove.
//
// Without a city every driver is listed, zero-delivery drivers with a zero
// total. With a city only drivers of that city having at least one delivery
// are listed.
//
// Example:
//
//	query := NewGetDriverRankReportQuery()
//	report, err := handler.Handle(ctx, query)
//	for _, row := range report {
//	    fmt.Println(row.DriverName, row.TotalDistance)
//	}
type GetDriverRankReportQuery struct {
	cityID kernel.UUID
	byCity bool

	guard guard.ConstructorGuard
}

// NewGetDriverRankReportQuery creates a report query over all drivers.
func NewGetDriverRankReportQuery() GetDriverRankReportQuery {
	return GetDriverRankReportQuery{guard: guard.NewConstructorGuard()}
}

// NewGetDriverRankReportByCityQuery creates a report query restricted to cityID.
func NewGetDriverRankReportByCityQuery(cityID kernel.UUID) (GetDriverRankReportQuery, error) {
	if err := cityID.Validate(); err != nil {
		return GetDriverRankReportQuery{}, err
	}
	return GetDriverRankReportQuery{cityID: cityID, byCity: true, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetDriverRankReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRankReportQueryIsNotConstructed)
}

// CityID returns the city filter and whether one is set.
func (q GetDriverRankReportQuery) CityID() (kernel.UUID, bool) {
	return q.cityID, q.byCity
}

// GetDriverRankReportQueryResponse is one row of the rank report.
// TotalDistance is truncated to whole kilometres.
type GetDriverRankReportQueryResponse struct {
	DriverID      kernel.UUID
	DriverName    string
	CityID        kernel.UUID
	TotalDistance int64
}
