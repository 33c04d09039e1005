package assign

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBuildProgram_Layout pins the variable layout (row-major i·K+k),
// the negated objective, and the constraint ordering: N example rows
// first, then K−1 class rows with the final class row dropped.
func TestBuildProgram_Layout(t *testing.T) {
	classes := []string{"A", "B"}
	counts := map[string]int{"A": 2, "B": 1}
	probs := [][]float64{
		{0.9, 0.1},
		{0.6, 0.4},
		{0.2, 0.8},
	}

	p := buildProgram(classes, counts, probs)

	// Objective: minimize the negated probabilities, row-major.
	require.Equal(t, []float64{-0.9, -0.1, -0.6, -0.4, -0.2, -0.8}, p.C)

	// 3 example rows + (2−1) class rows.
	require.Len(t, p.AEq, 4)
	require.Len(t, p.BEq, 4)

	// Example rows: ones over each row's variable block, RHS 1.
	require.Equal(t, []float64{1, 1, 0, 0, 0, 0}, p.AEq[0])
	require.Equal(t, []float64{0, 0, 1, 1, 0, 0}, p.AEq[1])
	require.Equal(t, []float64{0, 0, 0, 0, 1, 1}, p.AEq[2])
	require.Equal(t, []float64{1, 1, 1}, p.BEq[:3])

	// Single class row for "A" (the "B" row is linearly implied).
	require.Equal(t, []float64{1, 0, 1, 0, 1, 0}, p.AEq[3])
	require.Equal(t, 2.0, p.BEq[3])
}

// TestBuildProgram_SingleClass keeps the system well-formed at K=1:
// no class rows remain, only the per-example rows.
func TestBuildProgram_SingleClass(t *testing.T) {
	p := buildProgram(
		[]string{"only"},
		map[string]int{"only": 2},
		[][]float64{{0.3}, {0.7}},
	)

	require.Equal(t, []float64{-0.3, -0.7}, p.C)
	require.Len(t, p.AEq, 2)
	require.Equal(t, []float64{1, 1}, p.BEq)
}
