package domain

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

type HealthStatus struct {
	Success  bool   `json:"success"`
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}
