package catalog

import "errors"

var (
	// ErrNotLoaded возвращается, когда каталог еще не загружен
	ErrNotLoaded = errors.New("catalog: packages are not loaded yet")

	// ErrNoPackages возвращается, когда каталог загружен, но пуст или загрузка упала
	ErrNoPackages = errors.New("catalog: no packages available")

	// ErrPackageNotFound возвращается, когда пакет с таким id отсутствует в каталоге
	ErrPackageNotFound = errors.New("catalog: package not found")
)
