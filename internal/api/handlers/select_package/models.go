package select_package

// SelectPackageRequest HTTP request model
type SelectPackageRequest struct {
	PackageID string `json:"packageId"`
}
