package cfg

type Cfg struct {
	// Input configuration
	Input      string
	InputTable string
	ConfigFile string

	// Output configuration
	OutputDir string

	// Serve mode configuration
	Serve           bool
	Port            string
	RebuildInterval int
	APIAccessKey    string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
