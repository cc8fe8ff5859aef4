package boundary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

const featureCollectionType = "FeatureCollection"

var emptyCollectionJSON = []byte(`{"type":"FeatureCollection","features":[]}`)

// Feature - полигон границы с атрибутами слоя
type Feature struct {
	Properties map[string]any
	Geometry   geom.T
}

// FeatureCollection - проверенная коллекция полигонов. Исходный документ
// хранится как есть и отдается клиенту для отрисовки без перекодирования.
type FeatureCollection struct {
	Features []*Feature
	raw      json.RawMessage
}

// EmptyFeatureCollection возвращает пустую коллекцию
func EmptyFeatureCollection() *FeatureCollection {
	return &FeatureCollection{Features: []*Feature{}, raw: emptyCollectionJSON}
}

// Len возвращает число полигонов; nil-коллекция пуста
func (fc *FeatureCollection) Len() int {
	if fc == nil {
		return 0
	}
	return len(fc.Features)
}

// MarshalJSON отдает исходный GeoJSON-документ
func (fc *FeatureCollection) MarshalJSON() ([]byte, error) {
	if fc == nil || len(fc.raw) == 0 {
		return emptyCollectionJSON, nil
	}
	return fc.raw, nil
}

// Bounds возвращает охват всех геометрий или nil, если геометрий нет
func (fc *FeatureCollection) Bounds() *geom.Bounds {
	if fc == nil {
		return nil
	}
	var bounds *geom.Bounds
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		if bounds == nil {
			bounds = geom.NewBounds(geom.XY)
		}
		bounds.Extend(f.Geometry)
	}
	if bounds == nil || bounds.IsEmpty() {
		return nil
	}
	return bounds
}

type rawCollection struct {
	Type     string          `json:"type"`
	Features json.RawMessage `json:"features"`
}

type rawFeature struct {
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// ParseFeatureCollection проверяет форму документа: type == "FeatureCollection"
// и features - массив. Любое отклонение, включая неразборчивую геометрию,
// возвращает ErrInvalidResponse.
func ParseFeatureCollection(data []byte) (*FeatureCollection, error) {
	var doc rawCollection
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if doc.Type != featureCollectionType {
		return nil, fmt.Errorf("%w: unexpected type %q", ErrInvalidResponse, doc.Type)
	}
	features := bytes.TrimSpace(doc.Features)
	if len(features) == 0 || features[0] != '[' {
		return nil, fmt.Errorf("%w: features is not an array", ErrInvalidResponse)
	}

	dec := json.NewDecoder(bytes.NewReader(features))
	dec.UseNumber()
	var raws []*rawFeature
	if err := dec.Decode(&raws); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	fc := &FeatureCollection{Features: make([]*Feature, 0, len(raws)), raw: append(json.RawMessage(nil), data...)}
	for i, rf := range raws {
		f := &Feature{}
		if rf != nil {
			f.Properties = rf.Properties
			g, err := decodeGeometry(rf.Geometry)
			if err != nil {
				return nil, fmt.Errorf("%w: feature %d: %w", ErrInvalidResponse, i, err)
			}
			f.Geometry = g
		}
		fc.Features = append(fc.Features, f)
	}
	return fc, nil
}

func decodeGeometry(raw json.RawMessage) (geom.T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var g geom.T
	if err := geojson.Unmarshal(raw, &g); err != nil {
		return nil, err
	}
	return g, nil
}

// ExtractIDs собирает идентификаторы из поля field в порядке обнаружения.
// Пустые значения отбрасываются, дубликаты сохраняются.
func ExtractIDs(fc *FeatureCollection, field string) []string {
	ids := make([]string, 0, fc.Len())
	if fc == nil {
		return ids
	}
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		if id := idString(f.Properties[field]); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// idString приводит значение атрибута к строке; "ложные" значения (null, "", 0, false) дают пустую строку
func idString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		if f, err := val.Float64(); err == nil && f == 0 {
			return ""
		}
		return strings.TrimSpace(val.String())
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if !val {
			return ""
		}
		return "true"
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}
