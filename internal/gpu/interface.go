package gpu

import "github.com/NVIDIA/go-nvml/pkg/nvml"

// nvmlController abstracts NVML library operations for testing
type nvmlController interface {
	Initialize() error
	Shutdown() error
	GetDeviceCount() (int, error)
	GetDevice(index int) (nvml.Device, error)
	GetDriverVersion() (string, error)
}

// Device is one enumerated GPU. Load is a fraction in [0,1] and memory
// values are in MiB.
type Device struct {
	ID          int
	Name        string
	Load        float64
	MemoryFree  float64
	MemoryUsed  float64
	MemoryTotal float64
	Temperature float64
	Driver      string
}
