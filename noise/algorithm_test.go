package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllAlgorithms(t *testing.T) {
	algs := All()
	require.Len(t, algs, len(Bases())*(1+len(Fractals())))
	assert.Len(t, algs, 42)

	seen := make(map[Algorithm]bool)
	names := make(map[string]bool)
	for _, a := range algs {
		assert.True(t, a.Valid(), "%v", a)
		assert.False(t, seen[a], "duplicate %v", a)
		assert.False(t, names[a.String()], "duplicate name %v", a)
		seen[a] = true
		names[a.String()] = true
	}

	for i, b := range Bases() {
		assert.Equal(t, Algorithm{Base: b}, algs[i], "plain bases come first")
	}

	algs[0] = Algorithm{Base: Worley, Fractal: Billow}
	assert.Equal(t, Algorithm{Base: Perlin}, All()[0], "All returns a copy")
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range All() {
		t.Run(a.String(), func(t *testing.T) {
			parsed, err := ParseAlgorithm(a.String())
			require.NoError(t, err)
			assert.Equal(t, a, parsed)

			text, err := a.MarshalText()
			require.NoError(t, err)
			var back Algorithm
			require.NoError(t, back.UnmarshalText(text))
			assert.Equal(t, a, back)
		})
	}
}

func TestParseAlgorithmAliases(t *testing.T) {
	tests := []struct {
		give string
		want Algorithm
	}{
		{"perlin", Algorithm{Base: Perlin}},
		{" Worley ", Algorithm{Base: Worley}},
		{"FBMPerlin", Algorithm{Base: Perlin, Fractal: Fbm}},
		{"BMPerlinSurflet", Algorithm{Base: PerlinSurflet, Fractal: BasicMulti}},
		{"BValue", Algorithm{Base: Value, Fractal: Billow}},
		{"RMSS", Algorithm{Base: SuperSimplex, Fractal: RidgedMulti}},
		{"HMSS", Algorithm{Base: SuperSimplex, Fractal: HybridMulti}},
		{"hybridmultiopensimplex", Algorithm{Base: OpenSimplex, Fractal: HybridMulti}},
	}
	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlgorithmUnknown(t *testing.T) {
	for _, name := range []string{"", "Perlinn", "SS", "FbmFbm"} {
		_, err := ParseAlgorithm(name)
		assert.ErrorIs(t, err, ErrUnknownAlgorithm, "%q", name)
	}

	_, err := Algorithm{Base: numBases}.MarshalText()
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestAlgorithmString(t *testing.T) {
	assert.Equal(t, "Perlin", Algorithm{Base: Perlin}.String())
	assert.Equal(t, "RidgedMultiWorley", Algorithm{Base: Worley, Fractal: RidgedMulti}.String())
	assert.Equal(t, "FbmSuperSimplex", Algorithm{Base: SuperSimplex, Fractal: Fbm}.String())
	assert.Equal(t, "Plain", Plain.String())
}
