package domain

// ConnectionStats is the registry snapshot served on the socket stats endpoint.
type ConnectionStats struct {
	TotalConnections   int            `json:"totalConnections"`
	ActiveStores       int            `json:"activeTiendas"`
	ConnectionsByStore map[string]int `json:"connectionsByTienda"`
	AdminsByStore      map[string]int `json:"adminsByTienda"`
	CustomersByStore   map[string]int `json:"clientesByTienda"`
	TrackedOrders      int            `json:"ordenesSeguidas"`
}
