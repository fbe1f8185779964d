package queries

import "context"

type GetDeliveriesQueryHandler struct {
	reader DeliveryReader
}

func NewGetDeliveriesQueryHandler(reader DeliveryReader) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{reader: reader}
}

func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ledger, err := h.reader.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	deliveries := make([]GetDeliveriesQueryResponse, 0, len(ledger))
	for _, d := range ledger {
		deliveries = append(deliveries, GetDeliveriesQueryResponse{
			ID:           d.ID(),
			DriverID:     d.DriverID(),
			RestaurantID: d.RestaurantID(),
			CustomerID:   d.CustomerID(),
			DeliveryTime: d.DeliveryTime(),
			Distance:     d.Distance().Kilometres(),
		})
	}
	return deliveries, nil
}
