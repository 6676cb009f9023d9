package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTiers(t *testing.T) {
	tiers := DefaultTiers()
	require.Len(t, tiers, 5)

	for i, tier := range tiers {
		assert.Equal(t, i, tier.ID)
	}

	// tier 0 and tier 1 share the zero threshold
	assert.True(t, tiers[0].MinSpent.Equal(decimal.Zero))
	assert.True(t, tiers[1].MinSpent.Equal(decimal.Zero))
	assert.True(t, tiers[4].Multiplier.Equal(decimal.RequireFromString("1.6")))
}

func TestLoadTiers(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "tiers.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("valid_file_sorted_by_threshold", func(t *testing.T) {
		path := writeFile(t, `
tiers:
  - {id: 2, name: Prata, min_spent: 200, multiplier: 1.25}
  - {id: 0, name: Fora do clube, min_spent: 0, multiplier: 1}
  - {id: 1, name: Bronze, min_spent: 0, multiplier: 1}
`)
		tiers, err := LoadTiers(path)
		require.NoError(t, err)
		require.Len(t, tiers, 3)
		assert.Equal(t, 0, tiers[0].ID)
		assert.Equal(t, 2, tiers[2].ID)
		assert.True(t, tiers[2].MinSpent.Equal(decimal.NewFromInt(200)))
		assert.True(t, tiers[2].Multiplier.Equal(decimal.RequireFromString("1.25")))
	})

	t.Run("duplicate_id_rejected", func(t *testing.T) {
		path := writeFile(t, `
tiers:
  - {id: 1, name: Bronze, min_spent: 0, multiplier: 1}
  - {id: 1, name: Prata, min_spent: 180, multiplier: 1.2}
`)
		_, err := LoadTiers(path)
		assert.Error(t, err)
	})

	t.Run("empty_table_rejected", func(t *testing.T) {
		path := writeFile(t, "tiers: []\n")
		_, err := LoadTiers(path)
		assert.Error(t, err)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadTiers(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
