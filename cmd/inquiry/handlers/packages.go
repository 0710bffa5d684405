package handlers

import (
	"context"
	"fmt"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

// Packages prints the package catalog, optionally filtered by kind.
func Packages(ctx context.Context, conn *Connection, kind string) error {
	filter := domain.PackageKind(kind)
	if kind != "" && !filter.IsValid() {
		return fmt.Errorf("unknown package type %q (expected recreation, fishing or boat)", kind)
	}

	log := conn.logger()
	packages, err := conn.client(log).ListPackages(ctx)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	fmt.Print(renderPackages(filterPackages(packages, filter)))
	return nil
}

func filterPackages(packages []domain.PackageOption, kind domain.PackageKind) []domain.PackageOption {
	if kind == "" {
		return packages
	}
	out := make([]domain.PackageOption, 0, len(packages))
	for _, p := range packages {
		if p.Type == kind {
			out = append(out, p)
		}
	}
	return out
}
