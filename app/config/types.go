package config

// CalendarConfig describes one calendar: its display identity, the fixed
// timezone region bound to timed events, and output settings.
type CalendarConfig struct {
	Calendar CalendarInfo      `yaml:"calendar"`
	Settings CalendarSettings  `yaml:"settings"`
	Aliases  map[string]string `yaml:"aliases"`
}

// CalendarInfo contains the calendar's identity.
type CalendarInfo struct {
	Name      string `yaml:"name"`
	Timezone  string `yaml:"timezone"`
	UIDDomain string `yaml:"uid_domain"`
}

// CalendarSettings contains output settings.
type CalendarSettings struct {
	RefreshInterval int    `yaml:"refresh_interval"` // seconds
	CombinedName    string `yaml:"combined_name"`
}
