package earthwork

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossSectionMarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewCrossSection(1100, 350, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"position":1100,"cut":350,"fill":0,"station":"11+00"}`, string(data))
}

func TestCrossSectionUnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("derives station when absent", func(t *testing.T) {
		t.Parallel()
		var cs CrossSection
		require.NoError(t, json.Unmarshal([]byte(`{"position":1250,"cut":100,"fill":25}`), &cs))
		assert.Equal(t, "12+50", cs.Station())
		assert.Equal(t, 1250.0, cs.Position())
		assert.Equal(t, 100.0, cs.Cut())
		assert.Equal(t, 25.0, cs.Fill())
	})

	t.Run("keeps explicit station verbatim", func(t *testing.T) {
		t.Parallel()
		var cs CrossSection
		require.NoError(t, json.Unmarshal([]byte(`{"position":1100,"cut":350,"fill":0,"station":"99+99"}`), &cs))
		assert.Equal(t, "99+99", cs.Station())
	})

	t.Run("rejects malformed document", func(t *testing.T) {
		t.Parallel()
		var cs CrossSection
		err := json.Unmarshal([]byte(`{"position":"eleven hundred"}`), &cs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding cross-section")
	})
}

func TestCrossSectionJSONRoundTrip(t *testing.T) {
	t.Parallel()

	sections := []CrossSection{
		NewCrossSection(1100, 350, 0),
		NewCrossSection(1300, 0, 75),
		NewCrossSectionWithStation(1200, 150, 40, "12+00.5"),
	}
	for _, original := range sections {
		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded CrossSection
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	}
}
