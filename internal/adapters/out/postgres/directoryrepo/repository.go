package directoryrepo

import (
	"context"
	"errors"

	"walt/internal/core/domain/model/city"
	"walt/internal/core/domain/model/customer"
	"walt/internal/core/domain/model/kernel"
	"walt/internal/core/domain/model/restaurant"
	"walt/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCityRepository implements CityRepository using GORM.
type GormCityRepository struct {
	db *gorm.DB
}

func NewGormCityRepository(db *gorm.DB) *GormCityRepository {
	return &GormCityRepository{db: db}
}

// Add saves a new city to the database.
func (r *GormCityRepository) Add(ctx context.Context, c *city.City) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := cityFromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a city by ID.
func (r *GormCityRepository) Get(ctx context.Context, id kernel.UUID) (*city.City, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("city", id.String())
		}
		return nil, err
	}

	return cityToDomain(dto)
}

// GetByName retrieves a city by its unique name.
func (r *GormCityRepository) GetByName(ctx context.Context, name string) (*city.City, error) {
	var dto CityDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("city", name)
		}
		return nil, err
	}

	return cityToDomain(dto)
}

// GetAll lists every city in creation order.
func (r *GormCityRepository) GetAll(ctx context.Context) ([]*city.City, error) {
	var dtos []CityDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	cities := make([]*city.City, 0, len(dtos))
	for _, dto := range dtos {
		c, err := cityToDomain(dto)
		if err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}

	return cities, nil
}

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Save inserts the customer or overwrites the stored row with the same id.
func (r *GormCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := customerFromDomain(c)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "city_id", "description"}),
		}).
		Create(&dto).Error
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return customerToDomain(dto)
}

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Add saves a new restaurant to the database.
func (r *GormRestaurantRepository) Add(ctx context.Context, rest *restaurant.Restaurant) error {
	if err := rest.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(rest)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}
