package packages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	packagesRepo "github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/packages"
)

// Service каталог пакетов для booking API
type Service struct {
	repo   PackageRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса пакетов
func NewService(repo PackageRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает пакеты. Пустой kind означает все типы.
func (s *Service) List(ctx context.Context, kind string) ([]domain.PackageOption, error) {
	var filter *domain.PackageKind
	if kind = strings.ToLower(strings.TrimSpace(kind)); kind != "" {
		k := domain.PackageKind(kind)
		if !k.IsValid() {
			s.logger.Warn("List: invalid package type %q", kind)
			return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
		}
		filter = &k
	}

	pkgs, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d packages (type=%q)", len(pkgs), kind)
	return pkgs, nil
}

// GetByID возвращает пакет по id
func (s *Service) GetByID(ctx context.Context, id string) (*domain.PackageOption, error) {
	pkg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, packagesRepo.ErrPackageNotFound) {
			s.logger.Warn("GetByID: package %s not found", id)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("GetByID: repository error for package %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return pkg, nil
}
