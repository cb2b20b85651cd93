// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	jw := &cfg.JogWheel

	if jw.EEPROM.Size == 0 {
		jw.EEPROM.Size = 1024
	}

	if jw.Wheel.TickIntervalUs == 0 {
		jw.Wheel.TickIntervalUs = 512
	}
	if jw.Wheel.TriggerA == 0 && jw.Wheel.ResetA == 0 {
		jw.Wheel.TriggerA, jw.Wheel.ResetA = 15, 10
	}
	if jw.Wheel.TriggerB == 0 && jw.Wheel.ResetB == 0 {
		jw.Wheel.TriggerB, jw.Wheel.ResetB = 15, 10
	}
	if jw.Wheel.MaxPulseSepMs == 0 {
		jw.Wheel.MaxPulseSepMs = 40
	}
	if jw.Wheel.Source == "modbus" && jw.Wheel.Modbus.TimeoutMs == 0 {
		jw.Wheel.Modbus.TimeoutMs = 1000
	}
	if jw.Wheel.Source == "serial" && jw.Wheel.Serial.Baud == 0 {
		jw.Wheel.Serial.Baud = 115200
	}

	if b := jw.Buttons; b != nil {
		if b.DebounceMs == 0 {
			b.DebounceMs = 10
		}
		if b.CommitMs == 0 {
			b.CommitMs = 150
		}
		if b.PollIntervalMs == 0 {
			b.PollIntervalMs = 5
		}
	}

	if jw.HID.Path == "" {
		jw.HID.Path = "/dev/uinput"
	}
	if jw.HID.Name == "" {
		jw.HID.Name = "JogWheel"
	}

	if jw.Console.Prompt == "" {
		jw.Console.Prompt = "jogwheel> "
	}
}
