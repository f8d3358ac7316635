package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModel(t *testing.T) {
	cases := map[string]Model{
		"exact":     ModelExact,
		" BOW ":     ModelBOW,
		"bow-count": ModelBOW,
		"jaccard":   ModelJaccard,
		"cosine":    ModelCosine,
		"tfidf":     ModelCosine,
	}
	for input, want := range cases {
		got, err := ParseModel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
	_, err := ParseModel("minhash")
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestFormatParameter(t *testing.T) {
	assert.Equal(t, "", ModelExact.FormatParameter(0.5))
	assert.Equal(t, "3", ModelBOW.FormatParameter(3))
	assert.Equal(t, "0.7", ModelCosine.FormatParameter(0.7))
	assert.Equal(t, "1", ModelJaccard.FormatParameter(1.0))
}

func TestEdgeSetLabel(t *testing.T) {
	assert.Equal(t, "cosine@0.3", (&EdgeSet{Model: ModelCosine, Parameter: 0.3}).Label())
	assert.Equal(t, "bow@2", (&EdgeSet{Model: ModelBOW, Parameter: 2}).Label())
	var nilSet *EdgeSet
	assert.Equal(t, 0, nilSet.Len())
	assert.Equal(t, "", nilSet.Label())
}
