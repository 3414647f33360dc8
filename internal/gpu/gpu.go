// Package gpu enumerates NVIDIA GPUs through NVML.
package gpu

import (
	"context"

	"codeberg.org/mutker/hwreport/internal/errors"
	"codeberg.org/mutker/hwreport/internal/logger"
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

const (
	bytesPerMiB    = 1024 * 1024
	percentPerUnit = 100
)

// Enumerator lists the GPUs visible to NVML.
type Enumerator struct {
	nvml nvmlController
	log  logger.Logger
}

func New(log logger.Logger) *Enumerator {
	return &Enumerator{nvml: &nvmlWrapper{}, log: log}
}

// Devices initializes NVML, reads every device and shuts NVML down again.
// It fails with errors.ErrNoGPU when NVML is missing or reports no devices.
func (e *Enumerator) Devices(ctx context.Context) ([]Device, error) {
	errFactory := errors.New()

	if err := e.nvml.Initialize(); err != nil {
		e.log.Debug().Err(err).Msg("NVML initialization failed")
		return nil, errFactory.Wrap(errors.ErrNoGPU, err)
	}
	defer func() {
		if err := e.nvml.Shutdown(); err != nil {
			e.log.Warn().Err(err).Msg("NVML shutdown failed")
		}
	}()

	count, err := e.nvml.GetDeviceCount()
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrNoGPU, err)
	}
	if count == 0 {
		return nil, errFactory.New(errors.ErrNoGPU)
	}
	e.log.Debug().Msgf("Detected GPUs: %d", count)

	driver, err := e.nvml.GetDriverVersion()
	if err != nil {
		e.log.Warn().Err(err).Msg("Failed to get driver version")
	}

	devices := make([]Device, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errFactory.Wrap(errors.ErrCancelled, err)
		}

		handle, err := e.nvml.GetDevice(i)
		if err != nil {
			return nil, errFactory.Wrap(ErrDeviceInfoFailed, err).WithData(i)
		}

		dev, err := readDevice(i, handle)
		if err != nil {
			return nil, err
		}
		dev.Driver = driver
		devices = append(devices, dev)
	}

	return devices, nil
}

func readDevice(index int, device nvml.Device) (Device, error) {
	errFactory := errors.New()

	name, ret := device.GetName()
	if !IsNVMLSuccess(ret) {
		return Device{}, errFactory.Wrap(ErrDeviceInfoFailed, newNVMLError(ret)).WithData(index)
	}

	util, ret := device.GetUtilizationRates()
	if !IsNVMLSuccess(ret) {
		return Device{}, errFactory.Wrap(ErrUtilizationFailed, newNVMLError(ret)).WithData(index)
	}

	mem, ret := device.GetMemoryInfo()
	if !IsNVMLSuccess(ret) {
		return Device{}, errFactory.Wrap(ErrMemoryReadFailed, newNVMLError(ret)).WithData(index)
	}

	temp, ret := device.GetTemperature(nvml.TEMPERATURE_GPU)
	if !IsNVMLSuccess(ret) {
		return Device{}, errFactory.Wrap(ErrTemperatureReadFailed, newNVMLError(ret)).WithData(index)
	}

	return Device{
		ID:          index,
		Name:        name,
		Load:        float64(util.Gpu) / percentPerUnit,
		MemoryFree:  float64(mem.Free) / bytesPerMiB,
		MemoryUsed:  float64(mem.Used) / bytesPerMiB,
		MemoryTotal: float64(mem.Total) / bytesPerMiB,
		Temperature: float64(temp),
	}, nil
}
