package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   Popular[int]
	}{
		{name: "single winner", values: []int{3, 1, 3, 2}, want: Popular[int]{Value: 3, Count: 2, Found: true}},
		{name: "tie goes to lowest", values: []int{6, 2, 6, 2, 9}, want: Popular[int]{Value: 2, Count: 2, Found: true}},
		{name: "all distinct", values: []int{5, 4, 7}, want: Popular[int]{Value: 4, Count: 1, Found: true}},
		{name: "empty", values: nil, want: Popular[int]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mode(tt.values))
		})
	}
}

func TestMode_Strings(t *testing.T) {
	got := Mode([]string{"B", "A", "B", "A"})
	assert.Equal(t, "A", got.Value)
	assert.Equal(t, 2, got.Count)
}

func TestCountBy(t *testing.T) {
	got := CountBy([]string{"Subscriber", "Customer", "", "Subscriber", "Dependent"})

	assert.Equal(t, []Count{
		{Key: "Customer", N: 1},
		{Key: "Dependent", N: 1},
		{Key: "Subscriber", N: 2},
	}, got)
	assert.Empty(t, CountBy(nil))
}
