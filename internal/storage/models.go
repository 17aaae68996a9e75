package storage

import "time"

// CatalogSnapshot stores a serialized pricing catalog. The engine loads the
// newest snapshot at process start; the refresh worker writes new ones.
type CatalogSnapshot struct {
	ID        uint      `json:"-" gorm:"primaryKey;column:id"`
	Source    string    `json:"source" gorm:"column:source"` // "file", supplier key, "defaults"
	Payload   []byte    `json:"payload" gorm:"column:payload"`
	FetchedAt time.Time `json:"fetched_at" gorm:"column:fetched_at"`
}

// QuoteRecord stores one computed quote: the cleaned input profile and the
// full result payload, both as JSON.
type QuoteRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id"`
	Profile   []byte    `json:"profile" gorm:"column:profile"`
	Payload   []byte    `json:"payload" gorm:"column:payload"`
	Postcode  string    `json:"postcode,omitempty" gorm:"column:postcode"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

// Setting is a single key/value service setting (e.g. the refresh worker's
// interval override).
type Setting struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"column:value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// EmailConfig holds configuration for quote-document email delivery.
type EmailConfig struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id"`
	Provider    string    `json:"provider" gorm:"column:provider"` // "smtp", "sendgrid", "gmail", "resend"
	Host        string    `json:"host,omitempty" gorm:"column:host"`
	Port        int       `json:"port,omitempty" gorm:"column:port"`
	Username    string    `json:"username,omitempty" gorm:"column:username"`
	Password    string    `json:"password,omitempty" gorm:"column:password"`
	FromAddress string    `json:"from_address" gorm:"column:from_address"`
	FromName    string    `json:"from_name" gorm:"column:from_name"`
	APIKey      string    `json:"api_key,omitempty" gorm:"column:api_key"`
	Encryption  string    `json:"encryption,omitempty" gorm:"column:encryption"` // "none", "ssl", "tls"
	Enabled     bool      `json:"enabled" gorm:"column:enabled"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// ScheduledJob records the last outcome of a background job for operator
// visibility.
type ScheduledJob struct {
	Name           string    `gorm:"primaryKey;column:name"`
	LastRunAt      time.Time `gorm:"column:last_run_at"`
	LastDurationMs int64     `gorm:"column:last_duration_ms"`
	LastSuccess    int       `gorm:"column:last_success"`
	LastError      string    `gorm:"column:last_error"`
}
