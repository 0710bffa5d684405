package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/integrations/bookingapi"
)

// Status состояние загрузки каталога
type Status string

const (
	StatusNotLoaded Status = "not_loaded"
	StatusLoading   Status = "loading"
	StatusLoaded    Status = "loaded"
	StatusFailed    Status = "failed"
)

// Сообщения для отображения рядом с выбором пакета
const (
	MsgLoading      = "Loading packages..."
	MsgLoadFailed   = "Failed to load packages. Please try again later."
	MsgNoPackages   = "No packages available"
	MsgNotFound     = "Selected package not found"
	MsgNotLoadedYet = "Packages are not loaded yet"
)

// Snapshot неизменяемый срез состояния каталога для отображения
type Snapshot struct {
	Status   Status
	Packages []domain.PackageOption
	Message  string // inline-сообщение для блока выбора пакета, пустое если все ок
	LoadedAt time.Time
}

// Catalog хранит загруженный каталог пакетов.
// Загрузка выполняется один раз (или по истечении refreshInterval), поиск пакета
// при выборе идет по уже загруженным данным без сетевых вызовов.
type Catalog struct {
	source          PackagesSource
	refreshInterval time.Duration
	metrics         MetricsRecorder
	logger          Logger
	now             func() time.Time

	mu       sync.RWMutex
	status   Status
	packages []domain.PackageOption
	loadErr  error
	loadedAt time.Time
	inflight chan struct{}
}

// NewCatalog создает каталог. refreshInterval = 0 означает "загрузить один раз"
func NewCatalog(source PackagesSource, refreshInterval time.Duration, metrics MetricsRecorder, logger Logger) *Catalog {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Catalog{
		source:          source,
		refreshInterval: refreshInterval,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
		status:          StatusNotLoaded,
	}
}

// Load загружает каталог из источника. Параллельные вызовы ждут одну загрузку.
// Ошибка загрузки сохраняется в состоянии (StatusFailed) и возвращается вызывающему.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.inflight != nil {
		wait := c.inflight
		c.mu.Unlock()
		select {
		case <-wait:
		case <-ctx.Done():
			return ctx.Err()
		}
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.loadErr
	}

	done := make(chan struct{})
	c.inflight = done
	previous := c.status
	c.status = StatusLoading
	c.mu.Unlock()

	packages, err := c.source.ListPackages(ctx)

	c.mu.Lock()
	defer func() {
		c.inflight = nil
		close(done)
		c.mu.Unlock()
	}()

	if err != nil {
		c.logger.Error("Catalog.Load: failed to fetch packages: %v", err)
		c.loadErr = err
		// Уже загруженный каталог не теряем при неудачном обновлении
		if previous == StatusLoaded {
			c.status = StatusLoaded
			return err
		}
		c.status = StatusFailed
		c.packages = nil
		return err
	}

	c.status = StatusLoaded
	c.packages = packages
	c.loadErr = nil
	c.loadedAt = c.now()
	c.metrics.SetCatalogPackages(len(packages))

	if len(packages) == 0 {
		c.logger.Warn("Catalog.Load: catalog is empty")
	} else {
		c.logger.Info("Catalog.Load: loaded %d packages", len(packages))
	}
	return nil
}

// EnsureLoaded загружает каталог, если он еще не загружен, упал или устарел
func (c *Catalog) EnsureLoaded(ctx context.Context) error {
	c.mu.RLock()
	fresh := c.status == StatusLoaded &&
		(c.refreshInterval == 0 || c.now().Sub(c.loadedAt) < c.refreshInterval)
	c.mu.RUnlock()

	if fresh {
		return nil
	}
	return c.Load(ctx)
}

// Status текущее состояние загрузки
func (c *Catalog) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Snapshot возвращает копию состояния для отображения
func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		Status:   c.status,
		Packages: append([]domain.PackageOption(nil), c.packages...),
		LoadedAt: c.loadedAt,
	}

	switch {
	case c.status == StatusNotLoaded, c.status == StatusLoading:
		snap.Message = MsgLoading
	case c.status == StatusFailed && errors.Is(c.loadErr, bookingapi.ErrNotAnArray):
		// ответ вместо списка пакетов: показываем как пустой каталог
		snap.Message = MsgNoPackages
	case c.status == StatusFailed:
		snap.Message = MsgLoadFailed
	case len(c.packages) == 0:
		snap.Message = MsgNoPackages
	}
	return snap
}

// Lookup ищет пакет в загруженном каталоге
func (c *Catalog) Lookup(id string) (*domain.PackageOption, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.status {
	case StatusNotLoaded, StatusLoading:
		return nil, ErrNotLoaded
	case StatusFailed:
		return nil, ErrNoPackages
	}

	if len(c.packages) == 0 {
		return nil, ErrNoPackages
	}

	for i := range c.packages {
		if c.packages[i].ID == id {
			pkg := c.packages[i]
			return &pkg, nil
		}
	}
	return nil, ErrPackageNotFound
}

// ByKind пакеты заданного типа из загруженного каталога
func (c *Catalog) ByKind(kind domain.PackageKind) []domain.PackageOption {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.PackageOption
	for _, p := range c.packages {
		if p.Type == kind {
			out = append(out, p)
		}
	}
	return out
}

type nopMetrics struct{}

func (nopMetrics) SetCatalogPackages(int) {}
