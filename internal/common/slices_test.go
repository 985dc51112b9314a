package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]string(nil)))
	assert.True(t, IsEmpty([]string{}))
	assert.False(t, IsEmpty([]string{""}))
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []string
		dropped int
	}{
		{"nil", nil, []string{}, 0},
		{"no repeats", []string{"b", "a"}, []string{"b", "a"}, 0},
		{"keeps first occurrence", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}, 2},
		{"empty strings are values", []string{"", "", "x"}, []string{"", "x"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := Unique(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.dropped, dropped)
		})
	}
}

func TestTruncate(t *testing.T) {
	s := []int{1, 2, 3}

	assert.Equal(t, []int{1, 2}, Truncate(s, 2))
	assert.Equal(t, []int{1, 2, 3}, Truncate(s, 3))
	assert.Equal(t, []int{1, 2, 3}, Truncate(s, 10))
	assert.Equal(t, []int{1, 2, 3}, Truncate(s, 0))
}
