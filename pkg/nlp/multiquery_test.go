package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectMultiQuery(t *testing.T) {
	assert.True(t, DetectMultiQuery("Honda battery or Toyota tires"))
	assert.True(t, DetectMultiQuery("brakes and wipers"))
	assert.True(t, DetectMultiQuery("brakes, wipers"))
	assert.False(t, DetectMultiQuery("Honda battery"))
	assert.False(t, DetectMultiQuery("Toyota tires for my car"))
	assert.False(t, DetectMultiQuery("BMW brakes please"))
}

func TestSplitMultiQuery(t *testing.T) {
	assert.Equal(t, []string{"Honda battery", "Toyota tires"},
		SplitMultiQuery("Honda battery or Toyota tires"))
	assert.Equal(t, []string{"brakes", "wipers for my car"},
		SplitMultiQuery("brakes and wipers for my car"))
	assert.Equal(t, []string{"thanks", "that's all"},
		SplitMultiQuery("thanks, that's all"))
}
