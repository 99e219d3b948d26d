package dto

// MessageResponse is the static liveness payload served at /
type MessageResponse struct {
	Message string `json:"message" example:"University API is running"`
}

// InquiryCreatedResponse is returned after an inquiry has been stored
type InquiryCreatedResponse struct {
	Status string `json:"status" example:"ok"`
	ID     string `json:"id" example:"6650c0f1e4b0a1b2c3d4e5f6"`
}

// SeedCounts reports how many demo records were inserted per collection
type SeedCounts struct {
	Departments int `json:"departments"`
	Courses     int `json:"courses"`
	News        int `json:"news"`
}

// SeedResponse is returned by /api/seed. Inserted is omitted when the store
// is unavailable and Status is "no-db".
type SeedResponse struct {
	Status   string      `json:"status" example:"seeded"`
	Inserted *SeedCounts `json:"inserted,omitempty"`
}

// Seed statuses
const (
	SeedStatusSeeded = "seeded"
	SeedStatusNoDB   = "no-db"
)

// DiagnosticResponse is the /test probe payload. Configuration values are
// reported by presence only; DatabaseURL and DatabaseName are null when no
// store handle exists.
type DiagnosticResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// HealthResponse is the /health payload. Error explains why the store is
// down and is omitted while it answers.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Backend  string `json:"backend" example:"mongo"`
	Database bool   `json:"database"`
	Error    string `json:"error,omitempty"`
}
