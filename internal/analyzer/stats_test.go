package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 2.0, median([]int{3, 1, 2}))
	assert.Equal(t, 2.5, median([]int{1, 2, 3, 4}))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 2.0, mean([]int{1, 2, 3}))
}

func TestTopN(t *testing.T) {
	freq := map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}

	t.Run("Keeps Highest", func(t *testing.T) {
		top := topN(freq, 2)
		assert.Equal(t, map[string]int{"c": 5, "a": 2}, top, "ties break lexicographically")
	})

	t.Run("Smaller Than N", func(t *testing.T) {
		assert.Len(t, topN(freq, 10), 4)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "éé", truncate("ééée", 2), "cuts per rune, never mid-character")
	assert.Equal(t, "ééé", truncate("ééé", 3))
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "pdf", fileExtension("/files/report.PDF"))
	assert.Equal(t, "", fileExtension("/files/report"))
	assert.Equal(t, "", fileExtension("/files/script.exe"), "unknown extensions are not bucketed")
	assert.Equal(t, "", fileExtension("/dir.name/"))
}
