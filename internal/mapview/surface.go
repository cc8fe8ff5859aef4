//go:generate mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks

// Package mapview переводит жесты на карте в изменения выбора и описывает,
// что должна отрисовать клиентская картографическая библиотека.
package mapview

import (
	"errors"
	"fmt"

	"github.com/shenikar/market_area_service/internal/boundary"
	"github.com/shenikar/market_area_service/internal/models"
	"github.com/shenikar/market_area_service/internal/selection"
)

const (
	TileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	TileAttribution = "&copy; OpenStreetMap contributors"

	// MarkerRadiusMeters - радиус точки, отмечающей точный центр
	MarkerRadiusMeters = 500.0
)

// ErrUnsupportedRadius - радиус не входит в набор, доступный в интерфейсе
var ErrUnsupportedRadius = errors.New("radius is not one of the available options")

// Controller - часть координатора, которой пользуется поверхность карты
type Controller interface {
	SetCenter(center models.Coordinate, label string) error
	SetRadius(miles float64) error
	Snapshot() selection.State
}

// Style - параметры отрисовки векторного слоя
type Style struct {
	Color       string  `json:"color"`
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
	Weight      int     `json:"weight"`
}

var (
	circleStyle  = Style{Color: "#2563eb", FillColor: "#3b82f6", FillOpacity: 0.2, Weight: 2}
	overlayStyle = Style{Color: "#2563eb", FillColor: "#3b82f6", FillOpacity: 0.12, Weight: 1}
	markerStyle  = Style{Color: "#1d4ed8", FillColor: "#1d4ed8", FillOpacity: 0.6, Weight: 1}
)

// Circle - круг с радиусом в метрах
type Circle struct {
	Center       models.Coordinate `json:"center"`
	RadiusMeters float64           `json:"radius_meters"`
	Style        Style             `json:"style"`
}

// Bounds - прямоугольник, охватывающий заливку
type Bounds struct {
	SouthWest models.Coordinate `json:"south_west"`
	NorthEast models.Coordinate `json:"north_east"`
}

// Overlay - заливка полигонов. Key меняется при любом изменении выбора,
// чтобы клиент не показывал устаревшую заливку.
type Overlay struct {
	Key      string                      `json:"key"`
	Features *boundary.FeatureCollection `json:"features"`
	Bounds   *Bounds                     `json:"bounds,omitempty"`
	Style    Style                       `json:"style"`
}

// Tiles - источник подложки
type Tiles struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// View - полное описание кадра карты
type View struct {
	Center      models.Coordinate        `json:"center"`
	Label       string                   `json:"label"`
	Zoom        int                      `json:"zoom"`
	RadiusMiles float64                  `json:"radius_miles"`
	Circle      Circle                   `json:"circle"`
	Overlay     *Overlay                 `json:"overlay,omitempty"`
	Marker      Circle                   `json:"marker"`
	Tiles       Tiles                    `json:"tiles"`
	Loading     bool                     `json:"loading"`
	Error       string                   `json:"error,omitempty"`
	Selection   models.BoundarySelection `json:"selection"`
}

// Surface - поверхность карты одной сессии
type Surface struct {
	ctrl Controller
}

// NewSurface создает поверхность поверх контроллера выбора
func NewSurface(ctrl Controller) *Surface {
	return &Surface{ctrl: ctrl}
}

// OnPlace обрабатывает клик по карте: центр переносится, подпись - координаты точки
func (s *Surface) OnPlace(center models.Coordinate) error {
	return s.ctrl.SetCenter(center, center.String())
}

// OnRadiusChanged принимает только значения из models.RadiusOptions
func (s *Surface) OnRadiusChanged(miles float64) error {
	if !models.IsRadiusOption(miles) {
		return fmt.Errorf("%w: %v", ErrUnsupportedRadius, miles)
	}
	return s.ctrl.SetRadius(miles)
}

// View строит кадр по текущему состоянию контроллера
func (s *Surface) View() View {
	return Render(s.ctrl.Snapshot())
}

// Render описывает кадр для снимка состояния
func Render(state selection.State) View {
	v := View{
		Center:      state.Center,
		Label:       state.Label,
		Zoom:        ZoomForRadius(state.RadiusMiles),
		RadiusMiles: state.RadiusMiles,
		Circle: Circle{
			Center:       state.Center,
			RadiusMeters: models.MilesToMeters(state.RadiusMiles),
			Style:        circleStyle,
		},
		Marker: Circle{
			Center:       state.Center,
			RadiusMeters: MarkerRadiusMeters,
			Style:        markerStyle,
		},
		Tiles:     Tiles{URL: TileURL, Attribution: TileAttribution},
		Loading:   state.Loading,
		Error:     state.Error,
		Selection: state.Selection,
	}

	if state.BoundaryType != models.BoundaryNone && state.Features.Len() > 0 {
		v.Overlay = &Overlay{
			Key:      OverlayKey(state.BoundaryType, state.Center, state.RadiusMiles, state.Features.Len()),
			Features: state.Features,
			Bounds:   overlayBounds(state.Features),
			Style:    overlayStyle,
		}
	}
	return v
}

// ZoomForRadius - ступенчатая функция масштаба от радиуса
func ZoomForRadius(miles float64) int {
	switch {
	case miles <= 5:
		return 12
	case miles <= 10:
		return 11
	default:
		return 10
	}
}

// OverlayKey идентифицирует заливку по типу, центру, радиусу и числу полигонов
func OverlayKey(t models.BoundaryType, center models.Coordinate, radiusMiles float64, count int) string {
	return fmt.Sprintf("%s-%v-%v-%v-%d", t, center.Lat, center.Lng, radiusMiles, count)
}

func overlayBounds(fc *boundary.FeatureCollection) *Bounds {
	b := fc.Bounds()
	if b == nil {
		return nil
	}
	return &Bounds{
		SouthWest: models.Coordinate{Lat: b.Min(1), Lng: b.Min(0)},
		NorthEast: models.Coordinate{Lat: b.Max(1), Lng: b.Max(0)},
	}
}
