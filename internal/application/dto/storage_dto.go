package dto

// StoreModeResponse estado de sincronización de una colección.
type StoreModeResponse struct {
	Kind  string `json:"kind"`
	Mode  string `json:"mode"`
	Count int    `json:"count"`
}

// StorageResponse modo preferido (persistido) y modo efectivo de cada store.
type StorageResponse struct {
	Preferred string              `json:"preferred"`
	Remote    string              `json:"remote"`
	Stores    []StoreModeResponse `json:"stores"`
}

// SwitchStorageRequest cambio de modo para todos los stores.
type SwitchStorageRequest struct {
	Mode string `json:"mode"`
}

// HealthResponse respuesta de /health.
type HealthResponse struct {
	Status string `json:"status"`
	App    string `json:"app"`
}
