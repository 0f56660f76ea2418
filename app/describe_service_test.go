package app

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "infstat/domain/inference"
	"infstat/internal/errors"
)

type memorySource struct {
	headers []string
	columns map[string][]float64

	mu      sync.Mutex
	active  int
	maxSeen int
	reads   atomic.Int32
}

func (m *memorySource) Columns() ([]string, error) {
	return m.headers, nil
}

func (m *memorySource) ReadColumn(name string) (*domain.Sample, error) {
	m.reads.Add(1)
	m.mu.Lock()
	m.active++
	if m.active > m.maxSeen {
		m.maxSeen = m.active
	}
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.active--
		m.mu.Unlock()
	}()

	values, ok := m.columns[name]
	if !ok {
		return nil, errors.NotFound("column " + name)
	}
	return &domain.Sample{Name: name, Values: values}, nil
}

func newMemorySource() *memorySource {
	return &memorySource{
		headers: []string{"a", "b", "c"},
		columns: map[string][]float64{
			"a": {1, 2, 3, 4},
			"b": {10, 10, 20},
			"c": {5},
		},
	}
}

func TestDescribeColumnsKeepsOrder(t *testing.T) {
	svc := NewDescribeService(2)
	summaries, err := svc.DescribeColumns(context.Background(), newMemorySource(), []string{"b", "a"}, domain.PopulationDivisor)
	require.NoError(t, err)
	got := summaries.Columns
	require.Len(t, got, 2)
	assert.Empty(t, summaries.NonNumeric)

	assert.Equal(t, "b", got[0].Column)
	assert.Equal(t, 3, got[0].Description.Count)
	assert.Equal(t, 10.0, got[0].Description.Mode)

	assert.Equal(t, "a", got[1].Column)
	assert.InDelta(t, 2.5, got[1].Description.Mean, 1e-12)
	assert.InDelta(t, 1.25, got[1].Description.Variance, 1e-12)
}

func TestDescribeColumnsDefaultsToAllColumns(t *testing.T) {
	src := newMemorySource()
	got, err := NewDescribeService(4).DescribeColumns(context.Background(), src, nil, domain.PopulationDivisor)
	require.NoError(t, err)
	require.Len(t, got.Columns, 3)
	assert.Equal(t, "c", got.Columns[2].Column)
	assert.Equal(t, int32(3), src.reads.Load())
}

func TestDescribeColumnsLeavesOutNonNumericDefaults(t *testing.T) {
	src := &memorySource{
		headers: []string{"name", "age", "city"},
		columns: map[string][]float64{"name": nil, "age": {21, 34, 40}, "city": {}},
	}

	got, err := NewDescribeService(2).DescribeColumns(context.Background(), src, nil, domain.SampleDivisor)
	require.NoError(t, err)
	require.Len(t, got.Columns, 1)
	assert.Equal(t, "age", got.Columns[0].Column)
	assert.Equal(t, []string{"name", "city"}, got.NonNumeric)

	// Naming the column explicitly is still an error.
	_, err = NewDescribeService(2).DescribeColumns(context.Background(), src, []string{"age", "name"}, domain.SampleDivisor)
	assert.True(t, errors.IsInvalidInput(err))

	onlyText := &memorySource{headers: []string{"name"}, columns: map[string][]float64{"name": nil}}
	_, err = NewDescribeService(1).DescribeColumns(context.Background(), onlyText, nil, domain.SampleDivisor)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestDescribeColumnsPropagatesErrors(t *testing.T) {
	svc := NewDescribeService(1)

	_, err := svc.DescribeColumns(context.Background(), newMemorySource(), []string{"a", "missing"}, domain.SampleDivisor)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	// One value cannot carry a sample variance.
	_, err = svc.DescribeColumns(context.Background(), newMemorySource(), []string{"c"}, domain.SampleDivisor)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestDescribeColumnsRespectsWorkerLimit(t *testing.T) {
	src := &memorySource{columns: map[string][]float64{}}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		src.headers = append(src.headers, name)
		src.columns[name] = []float64{1, 2, 3}
	}

	_, err := NewDescribeService(2).DescribeColumns(context.Background(), src, nil, domain.SampleDivisor)
	require.NoError(t, err)
	assert.LessOrEqual(t, src.maxSeen, 2)
}

func TestDescribeColumnsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDescribeService(1).DescribeColumns(ctx, newMemorySource(), nil, domain.PopulationDivisor)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDescribeColumnsEmptySource(t *testing.T) {
	_, err := NewDescribeService(0).DescribeColumns(context.Background(), &memorySource{}, nil, domain.SampleDivisor)
	assert.True(t, errors.IsInvalidInput(err))
}
