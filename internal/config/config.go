// internal/config/config.go
package config

type Config struct {
	JogWheel JogWheelConfig `yaml:"jogwheel"`
}

type JogWheelConfig struct {
	EEPROM  EEPROMConfig   `yaml:"eeprom"`
	Wheel   WheelConfig    `yaml:"wheel"`
	Buttons *ButtonsConfig `yaml:"buttons"` // optional; no selector without them
	LED     *LEDConfig     `yaml:"led"`     // optional indicator
	HID     HIDConfig      `yaml:"hid"`
	Console ConsoleConfig  `yaml:"console"`
}

// ---- EEPROM ----

type EEPROMConfig struct {
	Path string `yaml:"path"`
	Size int    `yaml:"size"`
}

// ---- WHEEL ----

type WheelConfig struct {
	Source string       `yaml:"source"` // modbus | serial
	Modbus ModbusConfig `yaml:"modbus"`
	Serial SerialConfig `yaml:"serial"`

	TickIntervalUs int `yaml:"tick_interval_us"`

	TriggerA      int `yaml:"trigger_a"`
	TriggerB      int `yaml:"trigger_b"`
	ResetA        int `yaml:"reset_a"`
	ResetB        int `yaml:"reset_b"`
	MaxPulseSepMs int `yaml:"max_pulse_sep_ms"`
}

type ModbusConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	Address   uint16 `yaml:"address"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

type SerialConfig struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
}

// ---- BUTTONS ----

type ButtonsConfig struct {
	Device         string   `yaml:"device"`
	Codes          []uint16 `yaml:"codes"` // exactly 3 key codes, buttons A B C
	DebounceMs     int      `yaml:"debounce_ms"`
	CommitMs       int      `yaml:"commit_ms"`
	PollIntervalMs int      `yaml:"poll_interval_ms"`
}

// ---- LED ----

type LEDConfig struct {
	RedPath   string `yaml:"red_path"`
	GreenPath string `yaml:"green_path"`
	BluePath  string `yaml:"blue_path"`
}

// ---- HID ----

type HIDConfig struct {
	Path string `yaml:"path"`
	Name string `yaml:"name"`
}

// ---- CONSOLE ----

type ConsoleConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}
