package models

import (
	"errors"
	"fmt"
	"math"
)

// MetersPerMile - коэффициент перевода миль в метры для пространственных запросов
const MetersPerMile = 1609.34

var (
	// ErrInvalidCoordinate - координата вне допустимого диапазона или не конечна
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidRadius - радиус не является положительным конечным числом
	ErrInvalidRadius = errors.New("invalid radius")
)

// RadiusOptions - фиксированный набор радиусов (в милях), доступный в интерфейсе карты
var RadiusOptions = []float64{5, 10, 15, 25, 50}

// Значения по умолчанию для новой сессии выбора (Virginia Beach, 10 миль)
var (
	DefaultCenter      = Coordinate{Lat: 36.8529, Lng: -75.9780}
	DefaultRadiusMiles = 10.0
)

// Coordinate - точка (широта, долгота) в WGS84
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewCoordinate создает координату и проверяет ее
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	c := Coordinate{Lat: lat, Lng: lng}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Validate проверяет, что координата конечна и лежит в допустимых границах
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinate, c.Lat)
	}
	if math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) || c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinate, c.Lng)
	}
	return nil
}

// String возвращает координату в виде "lat, lng" с точностью до 5 знаков
func (c Coordinate) String() string {
	return fmt.Sprintf("%.5f, %.5f", c.Lat, c.Lng)
}

// ValidateRadius проверяет радиус в милях. Координатор принимает любое положительное значение.
func ValidateRadius(miles float64) error {
	if math.IsNaN(miles) || math.IsInf(miles, 0) || miles <= 0 {
		return fmt.Errorf("%w: %v miles", ErrInvalidRadius, miles)
	}
	return nil
}

// IsRadiusOption сообщает, входит ли радиус в набор RadiusOptions
func IsRadiusOption(miles float64) bool {
	for _, opt := range RadiusOptions {
		if opt == miles {
			return true
		}
	}
	return false
}

// MilesToMeters переводит мили в метры
func MilesToMeters(miles float64) float64 {
	return miles * MetersPerMile
}
