// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	jw := &cfg.JogWheel

	// ------------------------------------------------------------
	// EEPROM
	// ------------------------------------------------------------

	if jw.EEPROM.Path == "" {
		return fmt.Errorf("eeprom: path required")
	}
	if jw.EEPROM.Size < 0 {
		return fmt.Errorf("eeprom: size must not be negative")
	}

	// ------------------------------------------------------------
	// WHEEL SAMPLER
	// ------------------------------------------------------------

	switch jw.Wheel.Source {
	case "modbus":
		if jw.Wheel.Modbus.Endpoint == "" {
			return fmt.Errorf("wheel: modbus source requires an endpoint")
		}
	case "serial":
		if jw.Wheel.Serial.Device == "" {
			return fmt.Errorf("wheel: serial source requires a device")
		}
		if jw.Wheel.Serial.Baud < 0 {
			return fmt.Errorf("wheel: serial baud must not be negative")
		}
	case "":
		return fmt.Errorf("wheel: source required (modbus or serial)")
	default:
		return fmt.Errorf("wheel: unknown source %q", jw.Wheel.Source)
	}

	if jw.Wheel.TickIntervalUs < 0 || jw.Wheel.MaxPulseSepMs < 0 {
		return fmt.Errorf("wheel: intervals must not be negative")
	}

	// Levels default together; a half-set pair is a config error.
	for _, coil := range []struct {
		name           string
		trigger, reset int
	}{
		{"a", jw.Wheel.TriggerA, jw.Wheel.ResetA},
		{"b", jw.Wheel.TriggerB, jw.Wheel.ResetB},
	} {
		if coil.trigger == 0 && coil.reset == 0 {
			continue
		}
		if coil.trigger <= coil.reset {
			return fmt.Errorf("wheel: coil %s trigger level must exceed reset level", coil.name)
		}
	}

	// ------------------------------------------------------------
	// BUTTONS (OPT-IN)
	// ------------------------------------------------------------

	if b := jw.Buttons; b != nil {
		if b.Device == "" {
			return fmt.Errorf("buttons: device required")
		}
		if len(b.Codes) != 3 {
			return fmt.Errorf("buttons: exactly 3 key codes required, got %d", len(b.Codes))
		}
		if b.DebounceMs < 0 || b.CommitMs < 0 || b.PollIntervalMs < 0 {
			return fmt.Errorf("buttons: intervals must not be negative")
		}
	}

	// ------------------------------------------------------------
	// LED (OPT-IN)
	// ------------------------------------------------------------

	if l := jw.LED; l != nil {
		if l.RedPath == "" || l.GreenPath == "" || l.BluePath == "" {
			return fmt.Errorf("led: all three channel paths required")
		}
	}

	return nil
}
