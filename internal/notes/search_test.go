package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	collection := []Note{
		{ID: "1", Title: "Groceries", Body: "Milk, eggs"},
		{ID: "2", Title: "Greeting", Body: "hello world"},
		{ID: "3", Title: "HELLO again", Body: ""},
		{ID: "4", Title: "Untitled Note", Body: "nothing here"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query is identity", "", []string{"1", "2", "3", "4"}},
		{"case-insensitive body match", "HELLO", []string{"2", "3"}},
		{"title match", "groc", []string{"1"}},
		{"body match", "eggs", []string{"1"}},
		{"no match", "zebra", []string{}},
		{"whitespace is literal", " world", []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(collection, tt.query)
			ids := make([]string, 0, len(got))
			for _, n := range got {
				ids = append(ids, n.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilter_EmptyQueryReturnsSameCollection(t *testing.T) {
	collection := []Note{{ID: "1"}, {ID: "2"}}
	assert.Equal(t, collection, Filter(collection, ""))
}

func TestFilter_Idempotent(t *testing.T) {
	collection := []Note{
		{ID: "1", Title: "alpha", Body: "x"},
		{ID: "2", Title: "beta", Body: "Alphabet"},
		{ID: "3", Title: "gamma", Body: "y"},
	}
	once := Filter(collection, "ALPHA")
	assert.Equal(t, once, Filter(once, "ALPHA"))
	assert.Len(t, collection, 3, "input must not be modified")
}
