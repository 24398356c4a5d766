package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatsift/chatsift/internal/common"
)

func TestStatic_Vectorize(t *testing.T) {
	static := NewStatic(map[string][]float32{
		"alpha": {1, 0},
		"beta":  {0, 1},
	})

	vectors, err := static.Vectorize(context.Background(), []string{"beta", "alpha"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, []float32{0, 1}, vectors[0])
	assert.Equal(t, []float32{1, 0}, vectors[1])
}

func TestStatic_MissingTextIsUnavailable(t *testing.T) {
	static := NewStatic(map[string][]float32{"alpha": {1}})

	_, err := static.Vectorize(context.Background(), []string{"alpha", "gamma"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrVectorizerUnavailable)
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Vectorize(context.Background(), []string{"anything"})
	assert.ErrorIs(t, err, common.ErrVectorizerUnavailable)
}
