package usecase

import (
	"sync/atomic"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
)

// SettingsService ajustes de la tienda en memoria de proceso (hoy solo el modo mantenimiento).
type SettingsService struct {
	maintenance atomic.Bool
}

// NewSettingsService construye el servicio con el valor inicial de configuración.
func NewSettingsService(maintenanceMode bool) *SettingsService {
	s := &SettingsService{}
	s.maintenance.Store(maintenanceMode)
	return s
}

// MaintenanceMode indica si la tienda está en mantenimiento.
func (s *SettingsService) MaintenanceMode() bool { return s.maintenance.Load() }

// Get devuelve los ajustes actuales.
func (s *SettingsService) Get() dto.SettingsResponse {
	return dto.SettingsResponse{MaintenanceMode: s.MaintenanceMode()}
}

// Update aplica los campos presentes y devuelve el estado resultante.
func (s *SettingsService) Update(in dto.UpdateSettingsRequest) dto.SettingsResponse {
	if in.MaintenanceMode != nil {
		s.maintenance.Store(*in.MaintenanceMode)
	}
	return s.Get()
}
