// cmd/jogwheeld/main.go
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dehne/jogwheel/internal/config"
	"github.com/dehne/jogwheel/internal/console"
	"github.com/dehne/jogwheel/internal/dispatch"
	"github.com/dehne/jogwheel/internal/eeprom"
	"github.com/dehne/jogwheel/internal/hid"
	"github.com/dehne/jogwheel/internal/led"
	"github.com/dehne/jogwheel/internal/selector"
	btnevdev "github.com/dehne/jogwheel/internal/selector/evdev"
	"github.com/dehne/jogwheel/internal/store"
	"github.com/dehne/jogwheel/internal/wheel"
	wheelmodbus "github.com/dehne/jogwheel/internal/wheel/modbus"
	wheelserial "github.com/dehne/jogwheel/internal/wheel/serial"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: jogwheeld <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)
	jw := cfg.JogWheel

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --------------------
	// EEPROM + store
	// --------------------

	dev, err := eeprom.OpenFile(jw.EEPROM.Path, jw.EEPROM.Size)
	if err != nil {
		log.Fatalf("eeprom open failed: %v", err)
	}
	defer dev.Close()

	st, reset, err := store.Open(dev)
	if err != nil {
		log.Fatalf("store open failed: %v", err)
	}
	if reset {
		log.Printf("eeprom fingerprint mismatch: initialized factory default")
	}

	// --------------------
	// Wheel sampler + decoder
	// --------------------

	var sampler wheel.Sampler
	switch jw.Wheel.Source {
	case "modbus":
		mb, err := wheelmodbus.New(wheelmodbus.Config{
			Endpoint: jw.Wheel.Modbus.Endpoint,
			UnitID:   jw.Wheel.Modbus.UnitID,
			Address:  jw.Wheel.Modbus.Address,
			Timeout:  time.Duration(jw.Wheel.Modbus.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			log.Fatalf("modbus sampler failed: %v", err)
		}
		defer mb.Close()
		sampler = mb
	case "serial":
		sp, err := wheelserial.New(wheelserial.Config{
			Device: jw.Wheel.Serial.Device,
			Baud:   jw.Wheel.Serial.Baud,
		})
		if err != nil {
			log.Fatalf("serial sampler failed: %v", err)
		}
		defer sp.Close()
		sampler = sp
	}

	dec, err := wheel.New(wheel.Config{
		Trigger:     [2]int{jw.Wheel.TriggerA, jw.Wheel.TriggerB},
		Reset:       [2]int{jw.Wheel.ResetA, jw.Wheel.ResetB},
		MaxPulseSep: time.Duration(jw.Wheel.MaxPulseSepMs) * time.Millisecond,
	}, sampler)
	if err != nil {
		log.Fatalf("decoder build failed: %v", err)
	}
	go dec.Run(ctx, time.Duration(jw.Wheel.TickIntervalUs)*time.Microsecond)

	// --------------------
	// HID sink + dispatcher
	// --------------------

	sink, err := hid.New(hid.Config{Path: jw.HID.Path, Name: jw.HID.Name})
	if err != nil {
		log.Fatalf("hid sink failed: %v", err)
	}
	defer sink.Close()

	disp, err := dispatch.New(st, sink, dec)
	if err != nil {
		log.Fatalf("dispatcher build failed: %v", err)
	}

	// --------------------
	// Selector (optional)
	// --------------------

	var sel *selector.Selector
	loopInterval := 5 * time.Millisecond
	if b := jw.Buttons; b != nil {
		btns, err := btnevdev.Open(btnevdev.Config{
			Device: b.Device,
			Codes:  [3]uint16{b.Codes[0], b.Codes[1], b.Codes[2]},
		})
		if err != nil {
			log.Fatalf("button device failed: %v", err)
		}
		defer btns.Close()
		go func() {
			if err := btns.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("button reader stopped: %v", err)
			}
		}()

		var ind selector.Indicator
		if jw.LED != nil {
			rgb, err := led.New(led.Config{
				RedPath:   jw.LED.RedPath,
				GreenPath: jw.LED.GreenPath,
				BluePath:  jw.LED.BluePath,
			})
			if err != nil {
				log.Fatalf("led indicator failed: %v", err)
			}
			ind = rgb
		}

		sel, err = selector.New(selector.Config{
			Debounce: time.Duration(b.DebounceMs) * time.Millisecond,
			Commit:   time.Duration(b.CommitMs) * time.Millisecond,
		}, btns, st, ind)
		if err != nil {
			log.Fatalf("selector build failed: %v", err)
		}
		loopInterval = time.Duration(b.PollIntervalMs) * time.Millisecond
	}

	// --------------------
	// Main loop: dispatch + selector on one ticker
	// --------------------

	go func() {
		ticker := time.NewTicker(loopInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if err := disp.Step(); err != nil {
					log.Printf("dispatch error: %v", err)
				}
				if sel == nil {
					continue
				}
				if err := sel.Step(now); err != nil {
					log.Printf("selector error: %v", err)
				}
			}
		}
	}()

	// --------------------
	// Console on the main goroutine, or block until shutdown
	// --------------------

	if jw.Console.Enabled {
		con, err := console.New(console.Config{
			Prompt:      jw.Console.Prompt,
			HistoryFile: jw.Console.HistoryFile,
		}, st, dec)
		if err != nil {
			log.Fatalf("console build failed: %v", err)
		}
		if err := con.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("console stopped: %v", err)
		}
		return
	}

	<-ctx.Done()
}
