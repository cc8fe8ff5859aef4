// Package selection согласует центр, радиус и тип границы в итоговый BoundarySelection.
package selection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/market_area_service/internal/boundary"
	"github.com/shenikar/market_area_service/internal/models"
	"github.com/shenikar/market_area_service/internal/observability"
	"github.com/shenikar/market_area_service/pkg/logger"
)

const (
	DefaultDebounce     = 500 * time.Millisecond
	DefaultFetchTimeout = 20 * time.Second
)

// FallbackMessage показывается, когда заливка не загрузилась и выбор откатился к радиусу
const FallbackMessage = "Could not load filled areas. Showing radius instead."

// ErrClosed - координатор уже остановлен
var ErrClosed = errors.New("selection coordinator closed")

// Listener получает каждый примененный выбор. Вызывается под блокировкой
// координатора, поэтому не должен обращаться к нему обратно.
type Listener func(models.BoundarySelection)

// Options - начальное состояние и параметры координатора
type Options struct {
	Center       models.Coordinate
	Label        string
	RadiusMiles  float64
	BoundaryType models.BoundaryType
	Debounce     time.Duration
	FetchTimeout time.Duration
	Listener     Listener
	Logger       *logrus.Logger
	Metrics      *observability.Collector
}

// State - согласованный снимок состояния координатора
type State struct {
	Center       models.Coordinate
	Label        string
	RadiusMiles  float64
	BoundaryType models.BoundaryType
	Loading      bool
	Error        string
	Features     *boundary.FeatureCollection
	Selection    models.BoundarySelection
	Generation   uint64
}

// Coordinator - единственный владелец выбора одной сессии
type Coordinator struct {
	fetcher      boundary.Fetcher
	listener     Listener
	debounce     time.Duration
	fetchTimeout time.Duration
	logger       *logrus.Logger
	metrics      *observability.Collector

	mu         sync.Mutex
	center     models.Coordinate
	label      string
	radius     float64
	btype      models.BoundaryType
	generation uint64
	loading    bool
	errMsg     string
	features   *boundary.FeatureCollection
	selection  models.BoundarySelection
	timer      *time.Timer
	cancel     context.CancelFunc
	closed     bool
}

// New создает координатор. Пустые поля Options заменяются значениями по умолчанию.
func New(fetcher boundary.Fetcher, opts Options) (*Coordinator, error) {
	if fetcher == nil {
		return nil, errors.New("selection: fetcher is required")
	}
	if opts.RadiusMiles == 0 {
		opts.RadiusMiles = models.DefaultRadiusMiles
	}
	if opts.BoundaryType == "" {
		opts.BoundaryType = models.DefaultBoundaryType
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	if err := opts.Center.Validate(); err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}
	if err := models.ValidateRadius(opts.RadiusMiles); err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}
	bt, err := models.ParseBoundaryType(string(opts.BoundaryType))
	if err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}

	return &Coordinator{
		fetcher:      fetcher,
		listener:     opts.Listener,
		debounce:     opts.Debounce,
		fetchTimeout: opts.FetchTimeout,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		center:       opts.Center,
		label:        opts.Label,
		radius:       opts.RadiusMiles,
		btype:        bt,
		features:     boundary.EmptyFeatureCollection(),
		selection:    models.RadiusSelection(),
	}, nil
}

// Start планирует первое вычисление выбора для начального состояния
func (c *Coordinator) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.scheduleLocked()
	return nil
}

// SetCenter меняет центр. Смена одной лишь подписи не вызывает пересчета.
func (c *Coordinator) SetCenter(center models.Coordinate, label string) error {
	if err := center.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.label = label
	if c.center == center {
		return nil
	}
	c.center = center
	c.scheduleLocked()
	return nil
}

// SetRadius меняет радиус; принимается любое положительное значение
func (c *Coordinator) SetRadius(miles float64) error {
	if err := models.ValidateRadius(miles); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.radius == miles {
		return nil
	}
	c.radius = miles
	c.scheduleLocked()
	return nil
}

// SetBoundaryType меняет тип заливки
func (c *Coordinator) SetBoundaryType(t models.BoundaryType) error {
	bt, err := models.ParseBoundaryType(string(t))
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.btype == bt {
		return nil
	}
	c.btype = bt
	c.scheduleLocked()
	return nil
}

// Snapshot возвращает копию текущего состояния
func (c *Coordinator) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Center:       c.center,
		Label:        c.label,
		RadiusMiles:  c.radius,
		BoundaryType: c.btype,
		Loading:      c.loading,
		Error:        c.errMsg,
		Features:     c.features,
		Selection:    c.selection.Clone(),
		Generation:   c.generation,
	}
}

// Close останавливает таймер и отменяет незавершенный запрос. Повторный вызов безопасен.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.generation++
	c.stopLocked()
	c.loading = false
}

// scheduleLocked делает все предыдущие поколения устаревшими и перезапускает debounce
func (c *Coordinator) scheduleLocked() {
	c.generation++
	c.stopLocked()
	gen := c.generation
	c.timer = time.AfterFunc(c.debounce, func() { c.fire(gen) })
}

func (c *Coordinator) stopLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Coordinator) fire(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		return
	}
	c.timer = nil

	if c.btype == models.BoundaryNone {
		c.features = boundary.EmptyFeatureCollection()
		c.selection = models.RadiusSelection()
		c.loading = false
		c.errMsg = ""
		c.emitLocked()
		c.mu.Unlock()
		return
	}

	center, radius, bt := c.center, c.radius, c.btype
	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	c.cancel = cancel
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	result, err := c.fetcher.FetchBoundaries(ctx, center, radius, bt)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	log := c.logger.WithFields(logrus.Fields{
		"component":     "selection",
		"generation":    gen,
		"boundary_type": bt,
		"radius_miles":  radius,
	})

	if c.closed || gen != c.generation {
		c.metrics.ObserveSuperseded()
		log.WithField("current_generation", c.generation).Debug("Dropping superseded boundary result")
		return
	}
	c.cancel = nil
	c.loading = false

	if err != nil {
		log.WithError(err).Warn("Boundary fetch failed, falling back to radius")
		c.features = boundary.EmptyFeatureCollection()
		c.errMsg = FallbackMessage
		c.selection = models.RadiusSelection()
		c.emitLocked()
		return
	}

	c.features = result.Features
	if c.features == nil {
		c.features = boundary.EmptyFeatureCollection()
	}
	c.selection = models.NewBoundarySelection(bt, result.IDs)
	log.WithField("count", c.selection.Count).Debug("Boundary selection applied")
	c.emitLocked()
}

func (c *Coordinator) emitLocked() {
	c.metrics.ObserveSelection(c.selection.Type)
	if c.listener != nil {
		c.listener(c.selection.Clone())
	}
}
