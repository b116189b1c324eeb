package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	cmd := RootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.Bytes(), err
}

func TestRank(t *testing.T) {
	out, err := run(t, "rank", "--lost", "LP002", "--now", "2025-09-02T00:00")
	require.NoError(t, err)

	var ranked []struct {
		Sighting struct {
			ID string `json:"id"`
		} `json:"sighting"`
		TotalConfidence int `json:"total_confidence"`
	}
	require.NoError(t, json.Unmarshal(out, &ranked))
	require.Len(t, ranked, 2)
	assert.Equal(t, "SG101", ranked[0].Sighting.ID)
	assert.Equal(t, 88, ranked[0].TotalConfidence)
}

func TestRank_AttributeHeavyWeights(t *testing.T) {
	out, err := run(t, "rank", "--lost", "LP002", "--now", "2025-09-02T00:00", "--weights", "attribute-heavy")
	require.NoError(t, err)

	var ranked []struct {
		Sighting struct {
			ID string `json:"id"`
		} `json:"sighting"`
		TotalConfidence int `json:"total_confidence"`
	}
	require.NoError(t, json.Unmarshal(out, &ranked))
	require.NotEmpty(t, ranked)
	assert.Equal(t, "SG101", ranked[0].Sighting.ID)
	// sin size/age en el avistamiento, color pesa menos: 88 => 78
	assert.Equal(t, 78, ranked[0].TotalConfidence)
}

func TestRank_Errors(t *testing.T) {
	_, err := run(t, "rank", "--lost", "LP999")
	assert.Error(t, err)

	_, err = run(t, "rank", "--size-rule", "fuzzy")
	assert.Error(t, err)

	_, err = run(t, "rank", "--weights", "heavy")
	assert.Error(t, err)

	_, err = run(t, "rank", "--now", "yesterday")
	assert.Error(t, err)
}

func TestZone(t *testing.T) {
	out, err := run(t, "zone", "--now", "2025-09-02T00:00", "--last-seen", "2025-09-01T19:00", "--special-needs")
	require.NoError(t, err)

	var zone struct {
		RadiusKm float64 `json:"radius_km"`
	}
	require.NoError(t, json.Unmarshal(out, &zone))
	assert.Equal(t, 1.2, zone.RadiusKm)

	_, err = run(t, "zone")
	assert.Error(t, err)
}

func TestRisk(t *testing.T) {
	out, err := run(t, "risk", "--now", "2025-09-02T00:00", "--lat", "13.742", "--lng", "100.541")
	require.NoError(t, err)

	var rep struct {
		Level        string `json:"level"`
		RecentNearby int    `json:"recent_nearby"`
	}
	require.NoError(t, json.Unmarshal(out, &rep))
	assert.Equal(t, "normal", rep.Level)
	assert.GreaterOrEqual(t, rep.RecentNearby, 1)
}

func TestSeed(t *testing.T) {
	out, err := run(t, "seed")
	require.NoError(t, err)

	var data struct {
		LostPets  []json.RawMessage `json:"lost_pets"`
		Sightings []json.RawMessage `json:"sightings"`
	}
	require.NoError(t, json.Unmarshal(out, &data))
	assert.Len(t, data.LostPets, 8)
	assert.Len(t, data.Sightings, 3)
}
