package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionMap_Completed(t *testing.T) {
	m := CompletionMap{"done": true, "undone": false}

	assert.True(t, m.Completed("done"))
	assert.False(t, m.Completed("undone"))
	assert.False(t, m.Completed("absent"))

	var nilMap CompletionMap
	assert.False(t, nilMap.Completed("anything"))
}

func TestCompletionMap_Clone(t *testing.T) {
	m := CompletionMap{"a": true}
	c := m.Clone()
	c["b"] = true

	assert.True(t, m.Completed("a"))
	assert.False(t, m.Completed("b"))
	assert.True(t, c.Completed("b"))
}

func TestSection_Shape(t *testing.T) {
	flat := Section{Name: "Warmup", Questions: []string{"q1", "q2"}}
	assert.True(t, flat.Flat())
	assert.Equal(t, 2, flat.QuestionCount())

	nested := Section{
		Name: "Two Pointers",
		Subcategories: []Subcategory{
			{Name: "A", Questions: []string{"q1"}},
			{Name: "B", Questions: []string{"q2", "q3"}},
		},
	}
	assert.False(t, nested.Flat())
	assert.Equal(t, 3, nested.QuestionCount())
	assert.NotNil(t, nested.Subcategory("B"))
	assert.Nil(t, nested.Subcategory("C"))
}
