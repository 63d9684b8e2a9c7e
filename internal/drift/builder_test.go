package drift

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInitial_Counts(t *testing.T) {
	tests := []struct {
		name          string
		n             int
		p00, p01, p11 float64
		want00        int
		want01        int
		want11        int
	}{
		{
			name: "exact thirds absorb remainder into 11",
			n:    10, p00: 0.33, p01: 0.33, p11: 0.34,
			want00: 3, want01: 3, want11: 4,
		},
		{
			name: "classroom defaults",
			n:    10, p00: 0.5, p01: 0.4, p11: 0.1,
			want00: 5, want01: 4, want11: 1,
		},
		{
			name: "truncation favors the 11 class",
			n:    7, p00: 0.5, p01: 0.5, p11: 0,
			want00: 3, want01: 3, want11: 1,
		},
		{
			name: "proportions need not sum to one",
			n:    10, p00: 0.2, p01: 0.2, p11: 0,
			want00: 2, want01: 2, want11: 6,
		},
		{
			name: "single individual",
			n:    1, p00: 1, p01: 0, p11: 0,
			want00: 1, want01: 0, want11: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pop, err := BuildInitial(tt.n, tt.p00, tt.p01, tt.p11, NewRNG(42))
			require.NoError(t, err)
			require.Len(t, pop, tt.n)

			n00, n01, n11 := pop.Counts()
			assert.Equal(t, tt.want00, n00, "[0,0] count")
			assert.Equal(t, tt.want01, n01, "[0,1] count")
			assert.Equal(t, tt.want11, n11, "[1,1] count")
		})
	}
}

func TestBuildInitial_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		n             int
		p00, p01, p11 float64
	}{
		{"zero size", 0, 0.5, 0.4, 0.1},
		{"negative size", -3, 0.5, 0.4, 0.1},
		{"p00 above one", 10, 1.5, 0, 0},
		{"p01 negative", 10, 0.5, -0.1, 0},
		{"p11 above one", 10, 0, 0, 1.1},
		{"negative remainder", 10, 0.8, 0.8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pop, err := BuildInitial(tt.n, tt.p00, tt.p01, tt.p11, NewRNG(1))
			assert.Nil(t, pop)
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.False(t, errors.Is(err, ErrInvalidState))
		})
	}
}

func TestBuildInitial_ClassroomScenario(t *testing.T) {
	// N=4, p00=0.5, p01=0.5, p11=0: two [0,0] and two [0,1] individuals in
	// a seed-dependent order, with an allele-0 frequency of 0.75.
	pop, err := BuildInitial(4, 0.5, 0.5, 0, NewRNG(0))
	require.NoError(t, err)

	n00, n01, n11 := pop.Counts()
	assert.Equal(t, 2, n00)
	assert.Equal(t, 2, n01)
	assert.Equal(t, 0, n11)
	assert.InDelta(t, 0.75, Freq0(pop), 1e-12)
}

func TestBuildInitial_ShuffleIsSeedDeterministic(t *testing.T) {
	a, err := BuildInitial(100, 0.3, 0.4, 0.3, NewRNG(7))
	require.NoError(t, err)
	b, err := BuildInitial(100, 0.3, 0.4, 0.3, NewRNG(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := BuildInitial(100, 0.3, 0.4, 0.3, NewRNG(8))
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds should permute differently")
}

func TestBuildInitial_AllelesAreBinary(t *testing.T) {
	pop, err := BuildInitial(50, 0.25, 0.5, 0.25, NewRNG(3))
	require.NoError(t, err)
	for _, g := range pop {
		assert.LessOrEqual(t, g[0], Allele1)
		assert.LessOrEqual(t, g[1], Allele1)
	}
}
