package config

// Config is the full invaders configuration.
type Config struct {
	Window   Window  `yaml:"window"`
	TickRate int     `yaml:"tick_rate"`
	Sprites  Sprites `yaml:"sprites"`
	Log      Log     `yaml:"log"`
}

// Window describes the desktop window.
type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Resizable  bool   `yaml:"resizable"`
}

// Sprites locates sprite data.
type Sprites struct {
	Manifest string `yaml:"manifest"`
	Dir      string `yaml:"dir"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}
