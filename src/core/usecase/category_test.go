package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryListAll(t *testing.T) {
	e := newEnv()

	res, err := e.categorySvc.ListAll(context.Background())
	require.NoError(t, err)
	require.False(t, res.Failed())
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, res.Data, 4)
	assert.Equal(t, "Mindfulness & Meditation", res.Data[0].Name)
	assert.Equal(t, "Creativity & Inspiration", res.Data[3].Name)
}
