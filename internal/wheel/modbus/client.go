// internal/wheel/modbus/client.go

// Package modbus samples the coil ADC over Modbus TCP: two consecutive
// input registers, coil A then coil B.
package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

type Config struct {
	Endpoint string
	UnitID   uint8
	Address  uint16 // first of the two coil registers
	Timeout  time.Duration
}

// Sampler implements wheel.Sampler over one TCP connection.
type Sampler struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
	address uint16
}

func New(cfg Config) (*Sampler, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("wheel modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return &Sampler{
		handler: h,
		client:  modbus.NewClient(h),
		address: cfg.Address,
	}, nil
}

func (s *Sampler) Close() error {
	return s.handler.Close()
}

// Sample reads both coil levels in one request.
func (s *Sampler) Sample() (int, int, error) {
	raw, err := s.client.ReadInputRegisters(s.address, 2)
	if err != nil {
		return 0, 0, err
	}
	if len(raw) != 4 {
		return 0, 0, fmt.Errorf("wheel modbus: short response: %d bytes", len(raw))
	}
	a := int(raw[0])<<8 | int(raw[1])
	b := int(raw[2])<<8 | int(raw[3])
	return a, b, nil
}
