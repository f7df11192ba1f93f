package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreValues(t *testing.T) {
	t.Run("grateful for family", func(t *testing.T) {
		values := ScoreValues("i am grateful for my family today")
		require.Len(t, values, 2)
		// equal strength keeps taxonomy order
		assert.Equal(t, "Family", values[0].Value)
		assert.Equal(t, 1, values[0].Strength)
		assert.Equal(t, "Gratitude", values[1].Value)
		assert.Equal(t, 1, values[1].Strength)
		assert.NotEmpty(t, values[1].Description)
	})

	t.Run("no hits", func(t *testing.T) {
		assert.Empty(t, ScoreValues("zzz"))
	})

	t.Run("top five sorted by strength", func(t *testing.T) {
		corpus := "peace peace peace peace peace calm " +
			"honest honest honest " +
			"friend friend friend friend " +
			"travel " +
			"music music " +
			"grateful grateful grateful grateful grateful grateful " +
			"family " +
			"grow grow"
		values := ScoreValues(corpus)
		require.Len(t, values, 5)

		for _, v := range values {
			assert.Positive(t, v.Strength)
		}
		for i := 1; i < len(values); i++ {
			assert.GreaterOrEqual(t, values[i-1].Strength, values[i].Strength)
		}
		assert.Equal(t, "Gratitude", values[0].Value)
		assert.Equal(t, "Inner Peace", values[1].Value)
		assert.Equal(t, "Connection", values[2].Value)
		assert.Equal(t, "Authenticity", values[3].Value)
		// personal growth and creativity tie at 2; taxonomy order wins
		assert.Equal(t, "Personal Growth", values[4].Value)
	})
}

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "Inner Peace", FormatLabel("inner_peace"))
	assert.Equal(t, "Family", FormatLabel("family"))
	assert.Equal(t, "Personal Growth", FormatLabel("personal_growth"))
}

func TestTaxonomyOrder(t *testing.T) {
	tax := Taxonomy()
	require.Len(t, tax, 8)
	assert.Equal(t, "personal_growth", tax[0].Key)
	assert.Equal(t, "inner_peace", tax[7].Key)

	tax[0].Key = "mutated"
	assert.Equal(t, "personal_growth", Taxonomy()[0].Key)
}
