package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashstate/cashstate-go/pkg/domain"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	jf := NewJSONFile(path)

	err := jf.Write([]*domain.Transaction{
		{ID: "1", Amount: -4.2, CategoryID: "Food"},
		{ID: "2", Amount: 1200},
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []domain.Transaction
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Food", got[0].CategoryID)
}

func TestFromAddress(t *testing.T) {
	s, err := FromAddress("jsonfile:/tmp/out.json")
	require.NoError(t, err)
	assert.IsType(t, &JSONFile{}, s)

	s, err = FromAddress("es8:http://localhost:9200")
	require.NoError(t, err)
	assert.IsType(t, &ElasticsearchV8{}, s)

	_, err = FromAddress("nonsense")
	assert.Error(t, err)
}
