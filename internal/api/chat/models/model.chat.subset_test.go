// Package models - Test danh sách facet mặc định của labeled subsets.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSubsetSpecs(t *testing.T) {
	specs := DefaultSubsetSpecs()
	require.Len(t, specs, 10)

	// Tên facet phải duy nhất (là key trong kết quả $facet)
	names := make(map[string]bool)
	for _, spec := range specs {
		assert.False(t, names[spec.Name], "facet %q bị trùng tên", spec.Name)
		names[spec.Name] = true
		assert.NotEmpty(t, spec.Field)
		assert.NotEmpty(t, spec.Value)
	}

	// Hai facet sentiment dùng Pos/Neg, các facet lập trường dùng Favor/Against
	assert.Equal(t, SubsetSpec{Name: "sentiment_pos", Field: "senti", Value: SentiPos}, specs[0])
	assert.Equal(t, SubsetSpec{Name: "sentiment_neg", Field: "senti", Value: SentiNeg}, specs[1])
	for _, spec := range specs[2:] {
		assert.Contains(t, []string{StanceFavor, StanceAgainst}, spec.Value, "facet %q", spec.Name)
	}

	assert.True(t, names["societal_impact_favor"])
	assert.True(t, names["societal_impact_against"])
}
