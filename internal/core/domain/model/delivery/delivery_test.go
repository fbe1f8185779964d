package delivery_test

import (
	"testing"
	"time"

	"walt/internal/core/domain/model/city"
	"walt/internal/core/domain/model/customer"
	"walt/internal/core/domain/model/delivery"
	"walt/internal/core/domain/model/driver"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	tlv, _ := city.NewCity("Tel-Aviv")
	jerusalem, _ := city.NewCity("Jerusalem")
	mary, _ := driver.NewDriver("Mary", tlv.ID())
	robert, _ := driver.NewDriver("Robert", jerusalem.ID())
	beethoven, _ := customer.NewCustomer("Beethoven", tlv.ID(), "Ludwig van Beethoven")
	vegan, _ := restaurant.NewRestaurant("vegan", tlv.ID(), "Only vegan")
	meat, _ := restaurant.NewRestaurant("meat", jerusalem.ID(), "All meat restaurant")
	distance, _ := kernel.NewDistance(11.3)
	at := time.Date(2024, 2, 29, 19, 45, 0, 0, time.Local)

	t.Run("should build a delivery", func(t *testing.T) {
		d, err := delivery.NewDelivery(mary, vegan, beethoven, at, distance)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		require.NoError(t, d.ID().Validate())
		assert.True(t, d.DriverID().IsEqual(mary.ID()))
		assert.Equal(t, kernel.HourOfDay(19), d.Hour())
		assert.Equal(t, distance, d.Distance())
	})

	t.Run("should reject restaurant outside the customer's city", func(t *testing.T) {
		_, err := delivery.NewDelivery(robert, meat, beethoven, at, distance)

		require.ErrorIs(t, err, delivery.ErrCityMismatch)
	})

	t.Run("should reject a driver from another city", func(t *testing.T) {
		_, err := delivery.NewDelivery(robert, vegan, beethoven, at, distance)

		require.ErrorIs(t, err, delivery.ErrDriverOutsideCity)
	})

	t.Run("should reject a zero delivery time", func(t *testing.T) {
		_, err := delivery.NewDelivery(mary, vegan, beethoven, time.Time{}, distance)

		require.ErrorIs(t, err, delivery.ErrDeliveryTimeIsRequired)
	})

	t.Run("should reject an unconstructed distance", func(t *testing.T) {
		_, err := delivery.NewDelivery(mary, vegan, beethoven, at, kernel.Distance{})

		require.ErrorIs(t, err, kernel.ErrDistanceIsNotConstructed)
	})

	t.Run("should reject nil collaborators", func(t *testing.T) {
		_, err := delivery.NewDelivery(nil, vegan, beethoven, at, distance)

		require.ErrorIs(t, err, driver.ErrDriverIsNotConstructed)
	})
}

func TestDelivery_ConflictsWith(t *testing.T) {
	tlv, _ := city.NewCity("Tel-Aviv")
	mary, _ := driver.NewDriver("Mary", tlv.ID())
	bach, _ := customer.NewCustomer("Bach", tlv.ID(), "")
	cafe, _ := restaurant.NewRestaurant("cafe", tlv.ID(), "Coffee shop")
	distance, _ := kernel.NewDistance(3)
	at := time.Date(2024, 2, 29, 8, 10, 0, 0, time.UTC)

	d, err := delivery.NewDelivery(mary, cafe, bach, at, distance)
	require.NoError(t, err)

	assert.True(t, d.ConflictsWith(at.Add(49*time.Minute)))
	assert.True(t, d.ConflictsWith(at.AddDate(0, 0, 3)))
	assert.False(t, d.ConflictsWith(at.Add(50*time.Minute)))
	assert.False(t, d.ConflictsWith(at.Add(-11*time.Minute)))
}

func TestRestoreDelivery(t *testing.T) {
	distance, _ := kernel.NewDistance(3)
	at := time.Date(2024, 2, 29, 8, 10, 0, 0, time.UTC)

	t.Run("should keep the stored hour", func(t *testing.T) {
		d, err := delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			at.In(time.FixedZone("UTC+3", 3*3600)), 8, distance)

		require.NoError(t, err)
		assert.Equal(t, kernel.HourOfDay(8), d.Hour())
	})

	t.Run("should reject missing identifiers", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), at, 8, distance)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var d delivery.Delivery

		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})
}
