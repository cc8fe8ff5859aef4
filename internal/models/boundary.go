package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBoundaryType - неизвестный тип границы
var ErrInvalidBoundaryType = errors.New("invalid boundary type")

// BoundaryType - гранулярность административных полигонов поверх радиуса
type BoundaryType string

const (
	BoundaryNone   BoundaryType = "none"
	BoundaryZcta   BoundaryType = "zcta"
	BoundaryCounty BoundaryType = "county"
	BoundaryPlace  BoundaryType = "place"
	BoundaryTract  BoundaryType = "tract"
	BoundaryMsa    BoundaryType = "msa"
)

// DefaultBoundaryType - тип заливки, выбранный в виджете по умолчанию
const DefaultBoundaryType = BoundaryZcta

// SelectionRadius - тип выбора, когда заливка отключена или не загрузилась
const SelectionRadius = "radius"

// BoundaryTypes перечисляет все допустимые типы в порядке отображения
func BoundaryTypes() []BoundaryType {
	return []BoundaryType{BoundaryNone, BoundaryZcta, BoundaryCounty, BoundaryPlace, BoundaryTract, BoundaryMsa}
}

// ParseBoundaryType разбирает строковое значение типа границы
func ParseBoundaryType(s string) (BoundaryType, error) {
	t := BoundaryType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case BoundaryNone, BoundaryZcta, BoundaryCounty, BoundaryPlace, BoundaryTract, BoundaryMsa:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBoundaryType, s)
}

// BoundarySelection - итоговый выбор, передаваемый в отправку заявки
type BoundarySelection struct {
	Type  string   `json:"type"`
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

// RadiusSelection возвращает выбор "только радиус"
func RadiusSelection() BoundarySelection {
	return BoundarySelection{Type: SelectionRadius, IDs: []string{}, Count: 0}
}

// NewBoundarySelection строит выбор для типа t. Пустые идентификаторы отбрасываются,
// порядок и дубликаты сохраняются: каждый найденный полигон учитывается в Count.
func NewBoundarySelection(t BoundaryType, ids []string) BoundarySelection {
	if t == BoundaryNone || t == "" {
		return RadiusSelection()
	}
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		kept = append(kept, id)
	}
	return BoundarySelection{Type: string(t), IDs: kept, Count: len(kept)}
}

// IsRadius сообщает, является ли выбор запасным вариантом "только радиус"
func (s BoundarySelection) IsRadius() bool {
	return s.Type == SelectionRadius
}

// Clone возвращает копию с независимым слайсом идентификаторов
func (s BoundarySelection) Clone() BoundarySelection {
	ids := make([]string, len(s.IDs))
	copy(ids, s.IDs)
	return BoundarySelection{Type: s.Type, IDs: ids, Count: s.Count}
}
