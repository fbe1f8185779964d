package queries

import "context"

// GetAvailableDriversQueryHandler exposes the driver directory availability lookup.
type GetAvailableDriversQueryHandler struct {
	reader AvailabilityReader
}

func NewGetAvailableDriversQueryHandler(reader AvailabilityReader) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{reader: reader}
}

func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]GetAvailableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads, err := h.reader.FindAvailable(ctx, query.CityID(), query.DeliveryTime())
	if err != nil {
		return nil, err
	}

	drivers := make([]GetAvailableDriversQueryResponse, 0, len(loads))
	for _, l := range loads {
		drivers = append(drivers, GetAvailableDriversQueryResponse{
			DriverID:   l.Driver.ID(),
			Name:       l.Driver.Name(),
			Deliveries: l.Deliveries,
		})
	}
	return drivers, nil
}
