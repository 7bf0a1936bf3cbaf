package setting

import "time"

// Settings is a single-row table holding company-wide defaults.
type Settings struct {
	CompanyName string    `json:"company_name"`
	WorkStart   string    `json:"work_start"` // "HH:MM"
	WorkEnd     string    `json:"work_end"`   // "HH:MM"
	WeekendDays string    `json:"weekend_days"`
	UpdatedAt   time.Time `json:"updated_at"`
}
