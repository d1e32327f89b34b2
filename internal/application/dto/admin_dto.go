package dto

// SettingsResponse ajustes de la tienda controlados por el admin.
type SettingsResponse struct {
	MaintenanceMode bool `json:"maintenanceMode"`
}

// UpdateSettingsRequest cambio de ajustes (parcial).
type UpdateSettingsRequest struct {
	MaintenanceMode *bool `json:"maintenanceMode"`
}

// ResourceCounts cantidad de registros por recurso.
type ResourceCounts struct {
	Users    int `json:"users"`
	Products int `json:"products"`
	Orders   int `json:"orders"`
	Tickets  int `json:"tickets"`
	FAQs     int `json:"faqs"`
}

// LatencyStats percentiles de latencia HTTP en milisegundos.
type LatencyStats struct {
	Count int64   `json:"count"`
	P50   float64 `json:"p50Ms"`
	P90   float64 `json:"p90Ms"`
	P99   float64 `json:"p99Ms"`
	Max   float64 `json:"maxMs"`
	Mean  float64 `json:"meanMs"`
}

// StatsResponse tablero del panel admin.
type StatsResponse struct {
	Counts  ResourceCounts `json:"counts"`
	Latency LatencyStats   `json:"latency"`
}
