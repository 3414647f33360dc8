package report

import "context"

type gpuReport struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Load        float64 `json:"load"`
	FreeMemory  float64 `json:"free_memory"`
	UsedMemory  float64 `json:"used_memory"`
	TotalMemory float64 `json:"total_memory"`
	Temperature float64 `json:"temperature"`
	Driver      string  `json:"driver"`
}

// GPU reports every enumerated GPU with load as a percentage.
func (r *Reporter) GPU(ctx context.Context) (any, error) {
	devices, err := r.providers.GPU.Devices(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]gpuReport, 0, len(devices))
	for _, d := range devices {
		result = append(result, gpuReport{
			ID:          d.ID,
			Name:        d.Name,
			Load:        d.Load * 100,
			FreeMemory:  d.MemoryFree,
			UsedMemory:  d.MemoryUsed,
			TotalMemory: d.MemoryTotal,
			Temperature: d.Temperature,
			Driver:      d.Driver,
		})
	}

	return result, nil
}
