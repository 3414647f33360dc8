package memory

import (
	"context"
	stderrors "errors"
	"testing"

	"codeberg.org/mutker/hwreport/internal/errors"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	vm  *mem.VirtualMemoryStat
	sm  *mem.SwapMemoryStat
	err error
}

func (f fakeSource) virtual(context.Context) (*mem.VirtualMemoryStat, error) { return f.vm, f.err }
func (f fakeSource) swap(context.Context) (*mem.SwapMemoryStat, error)       { return f.sm, f.err }

var testVM = &mem.VirtualMemoryStat{
	Total: 16, Available: 8, Used: 6, Free: 2,
	Active: 5, Inactive: 4, Buffers: 3, Cached: 7, Shared: 1, Slab: 9,
}

func TestVirtualLinux(t *testing.T) {
	p := &Provider{src: fakeSource{vm: testVM}, goos: "linux"}

	v, err := p.Virtual(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(16), v.Total)
	assert.Equal(t, uint64(8), v.Available)
	require.NotNil(t, v.Active)
	require.NotNil(t, v.Slab)
	assert.Equal(t, uint64(5), *v.Active)
	assert.Equal(t, uint64(9), *v.Slab)
}

func TestVirtualDarwin(t *testing.T) {
	p := &Provider{src: fakeSource{vm: testVM}, goos: "darwin"}

	v, err := p.Virtual(context.Background())
	require.NoError(t, err)
	require.NotNil(t, v.Active)
	require.NotNil(t, v.Inactive)
	assert.Nil(t, v.Buffers)
	assert.Nil(t, v.Cached)
	assert.Nil(t, v.Shared)
	assert.Nil(t, v.Slab)
}

func TestVirtualWindows(t *testing.T) {
	p := &Provider{src: fakeSource{vm: testVM}, goos: "windows"}

	v, err := p.Virtual(context.Background())
	require.NoError(t, err)
	assert.Nil(t, v.Active)
	assert.Nil(t, v.Inactive)
	assert.Equal(t, uint64(2), v.Free)
}

func TestSwap(t *testing.T) {
	p := &Provider{src: fakeSource{sm: &mem.SwapMemoryStat{Total: 10, Used: 4, Free: 6, Sin: 4096, Sout: 8192}}}

	s, err := p.Swap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Swap{Total: 10, Used: 4, Free: 6, Sin: 4096, Sout: 8192}, s)
}

func TestProviderErrors(t *testing.T) {
	p := &Provider{src: fakeSource{err: stderrors.New("no /proc/meminfo")}, goos: "linux"}

	_, err := p.Virtual(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrProviderFailed))

	_, err = p.Swap(context.Background())
	require.Error(t, err)
}
