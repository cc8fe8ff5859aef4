package boundary

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shenikar/market_area_service/internal/models"
)

// DefaultBaseURL - корень сервисов TIGERweb (ArcGIS REST)
const DefaultBaseURL = "https://tigerweb.geo.census.gov/arcgis/rest/services/TIGERweb"

// Descriptor описывает слой внешнего сервиса для одного типа границы
type Descriptor struct {
	Service   string
	Layer     int
	OutFields string
	IDField   string
}

// DescriptorFor возвращает слой для типа границы. Для BoundaryNone слоя нет.
func DescriptorFor(t models.BoundaryType) (Descriptor, bool) {
	switch t {
	case models.BoundaryZcta:
		return Descriptor{Service: "PUMA_TAD_TAZ_UGA_ZCTA", Layer: 1, OutFields: "ZCTA5,BASENAME", IDField: "ZCTA5"}, true
	case models.BoundaryCounty:
		return Descriptor{Service: "State_County", Layer: 11, OutFields: "GEOID,NAME", IDField: "GEOID"}, true
	case models.BoundaryPlace:
		return Descriptor{Service: "Places_CouSub_ConCity_SubMCD", Layer: 4, OutFields: "GEOID,NAME", IDField: "GEOID"}, true
	case models.BoundaryTract:
		return Descriptor{Service: "Tracts_Blocks", Layer: 8, OutFields: "GEOID,BASENAME", IDField: "GEOID"}, true
	case models.BoundaryMsa:
		return Descriptor{Service: "CBSA", Layer: 3, OutFields: "GEOID,NAME,BASENAME", IDField: "GEOID"}, true
	case models.BoundaryNone:
		return Descriptor{}, false
	}
	return Descriptor{}, false
}

// QueryURL строит адрес query-эндпоинта слоя относительно base
func (d Descriptor) QueryURL(base string) string {
	return fmt.Sprintf("%s/%s/MapServer/%d/query", strings.TrimRight(base, "/"), d.Service, d.Layer)
}

// QueryParams строит параметры точечного запроса на пересечение в радиусе meters
func (d Descriptor) QueryParams(center models.Coordinate, meters float64) url.Values {
	params := url.Values{}
	params.Set("f", "geojson")
	params.Set("where", "1=1")
	params.Set("returnGeometry", "true")
	params.Set("outFields", d.OutFields)
	params.Set("geometryType", "esriGeometryPoint")
	params.Set("inSR", "4326")
	params.Set("outSR", "4326")
	params.Set("spatialRel", "esriSpatialRelIntersects")
	params.Set("geometry", formatFloat(center.Lng)+","+formatFloat(center.Lat))
	params.Set("distance", formatFloat(meters))
	params.Set("units", "esriSRUnit_Meter")
	return params
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
