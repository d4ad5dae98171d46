package shape

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRectangle(t *testing.T) {
	r := NewRectangle(3, 4.5)
	assert.Equal(t, 3.0, r.Width)
	assert.Equal(t, 4.5, r.Height)
	assert.Equal(t, 13.5, r.Area)
}

func TestRectangle_UnmarshalJSON(t *testing.T) {
	var r Rectangle
	require.NoError(t, json.Unmarshal([]byte(`{"width":2,"height":5,"area":999}`), &r))
	assert.Equal(t, NewRectangle(2, 5), r)

	err := json.Unmarshal([]byte(`{"width":2}`), &r)
	assert.ErrorContains(t, err, "requires both width and height")

	err = json.Unmarshal([]byte(`[1,2]`), &r)
	assert.Error(t, err)
}
