package models

// AssetStatus represents the lifecycle status of an asset
type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "AVAILABLE"
	AssetStatusAssigned    AssetStatus = "ASSIGNED"
	AssetStatusMaintenance AssetStatus = "MAINTENANCE"
	AssetStatusLost        AssetStatus = "LOST"
	AssetStatusBroken      AssetStatus = "BROKEN"
)

// assetStatusLabels maps stored values to display labels used on labels,
// history entries and API responses.
var assetStatusLabels = map[AssetStatus]string{
	AssetStatusAvailable:   "Available",
	AssetStatusAssigned:    "Assigned / In Use",
	AssetStatusMaintenance: "In Maintenance",
	AssetStatusLost:        "Lost / Stolen",
	AssetStatusBroken:      "Broken / Decommissioned",
}

// IsValid checks if the AssetStatus is valid
func (s AssetStatus) IsValid() bool {
	switch s {
	case AssetStatusAvailable, AssetStatusAssigned, AssetStatusMaintenance, AssetStatusLost, AssetStatusBroken:
		return true
	}
	return false
}

// Label returns the human-readable display label for the status.
// Unknown values are returned verbatim so history entries never lose data.
func (s AssetStatus) Label() string {
	if label, ok := assetStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// AllAssetStatuses lists every valid status, in display order
func AllAssetStatuses() []AssetStatus {
	return []AssetStatus{
		AssetStatusAvailable,
		AssetStatusAssigned,
		AssetStatusMaintenance,
		AssetStatusLost,
		AssetStatusBroken,
	}
}
