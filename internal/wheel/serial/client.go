// internal/wheel/serial/client.go

// Package serial samples the coil ADC over a serial link. The link carries
// a stream of 5-byte frames: a 0xA5 sync byte followed by the two coil
// levels as big-endian u16, coil A then coil B.
package serial

import (
	"errors"
	"io"
	"time"

	"github.com/tarm/serial"
)

const syncByte = 0xA5

type Config struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration
}

// Sampler implements wheel.Sampler over a serial port.
type Sampler struct {
	port *serial.Port
}

func New(cfg Config) (*Sampler, error) {
	if cfg.Device == "" {
		return nil, errors.New("wheel serial: device required")
	}
	if cfg.Baud <= 0 {
		return nil, errors.New("wheel serial: baud rate must be > 0")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, err
	}
	return &Sampler{port: port}, nil
}

func (s *Sampler) Close() error {
	return s.port.Close()
}

// Sample reads one frame, scanning forward to the sync byte so a partial
// frame left over from startup cannot shift the stream.
func (s *Sampler) Sample() (int, int, error) {
	var buf [4]byte
	for {
		if _, err := io.ReadFull(s.port, buf[:1]); err != nil {
			return 0, 0, err
		}
		if buf[0] == syncByte {
			break
		}
	}
	if _, err := io.ReadFull(s.port, buf[:]); err != nil {
		return 0, 0, err
	}
	a := int(buf[0])<<8 | int(buf[1])
	b := int(buf[2])<<8 | int(buf[3])
	return a, b, nil
}
