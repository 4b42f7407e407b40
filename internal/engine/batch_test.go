package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBatch(t *testing.T) {
	t.Run("preserves input order", func(t *testing.T) {
		sites := make([]Site, 0, 50)
		for i := range 50 {
			in := referenceInputs()
			in.PoolAreaSqft = float64(500 + i*100)
			sites = append(sites, Site{Name: fmt.Sprintf("pool-%02d", i), Inputs: in})
		}

		got, err := ComputeBatch(context.Background(), DefaultModel(), sites)
		require.NoError(t, err)
		require.Len(t, got, len(sites))

		for i, est := range got {
			assert.Equal(t, sites[i].Name, est.Name)
			assert.Equal(t, sites[i].Inputs, est.Inputs)
			assert.Equal(t, ComputeEstimate(sites[i].Inputs), est.Result)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ComputeBatch(context.Background(), DefaultModel(), nil)
		assert.ErrorIs(t, err, ErrNoSites)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := ComputeBatch(ctx, DefaultModel(), []Site{{Name: "a", Inputs: referenceInputs()}})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("uses the given model", func(t *testing.T) {
		m := DefaultModel()
		m.PanelCost = 5000

		got, err := ComputeBatch(context.Background(), m, []Site{{Name: "a", Inputs: referenceInputs()}})
		require.NoError(t, err)
		assert.InDelta(t, 190000.0, got[0].Result.SystemCost, 1e-9)
	})
}
