package queries

import (
	"context"

	"walt/internal/core/domain/model/driver"
)

// GetDriverRankReportQueryHandler builds the driver rank report.
type GetDriverRankReportQueryHandler struct {
	reader DriverRankReader
}

func NewGetDriverRankReportQueryHandler(reader DriverRankReader) GetDriverRankReportQueryHandler {
	return GetDriverRankReportQueryHandler{reader: reader}
}

// Handle returns the report ordered by total distance, longest first.
func (h GetDriverRankReportQueryHandler) Handle(
	ctx context.Context,
	query GetDriverRankReportQuery,
) ([]GetDriverRankReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		mileage []driver.Mileage
		err     error
	)
	if cityID, ok := query.CityID(); ok {
		mileage, err = h.reader.DriverDistancesByCity(ctx, cityID)
	} else {
		mileage, err = h.reader.DriverDistances(ctx)
	}
	if err != nil {
		return nil, err
	}

	report := make([]GetDriverRankReportQueryResponse, 0, len(mileage))
	for _, m := range mileage {
		report = append(report, GetDriverRankReportQueryResponse{
			DriverID:      m.Driver.ID(),
			DriverName:    m.Driver.Name(),
			CityID:        m.Driver.CityID(),
			TotalDistance: m.TotalKilometres(),
		})
	}
	return report, nil
}
