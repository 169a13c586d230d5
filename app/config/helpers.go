package config

import (
	"time"
)

// GetRefreshInterval returns the refresh interval as time.Duration
func (s *CalendarSettings) GetRefreshInterval() time.Duration {
	if s.RefreshInterval <= 0 {
		return 3600 * time.Second // default 1 hour
	}
	return time.Duration(s.RefreshInterval) * time.Second
}
