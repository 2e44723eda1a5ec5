package registry

import (
	"sync"
	"testing"

	"github.com/arthur-debert/mapcat/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	reg := New[string, int]()
	assert.Equal(t, 0, reg.Count())

	require.NoError(t, reg.Register("shape", 1))
	require.NoError(t, reg.Register("icon", 2))

	got, err := reg.Get("icon")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.True(t, reg.Has("shape"))
	assert.Equal(t, 2, reg.Count())

	err = reg.Register("icon", 3)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	_, err = reg.Get("mapcfg")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, ok := reg.Lookup("mapcfg")
	assert.False(t, ok)
}

func TestReplace(t *testing.T) {
	reg := New[int, string]()
	reg.Replace(1, "a")
	reg.Replace(1, "b")

	got, ok := reg.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "b", got)
}

func TestKeysSorted(t *testing.T) {
	reg := New[int, string]()
	for _, k := range []int{5, 1, 3} {
		require.NoError(t, reg.Register(k, "x"))
	}
	assert.Equal(t, []int{1, 3, 5}, reg.Keys())
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := New[string, int]()
	MustRegister(reg, "a", 1)
	assert.Panics(t, func() { MustRegister(reg, "a", 2) })
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[int, int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg.Replace(i, i)
			_ = reg.Has(i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, reg.Count())
}
