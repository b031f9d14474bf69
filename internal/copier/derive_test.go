package copier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertSize(t *testing.T) {
	assert.Equal(t, 1.0, ConvertSize(100000))
	assert.Equal(t, 2.0, ConvertSize(200000))
	assert.Equal(t, 0.0, ConvertSize(0))
	assert.Equal(t, 0.00001, ConvertSize(1))
	assert.Equal(t, 12.34567, ConvertSize(1234567))
}

func TestConvertSizeMonotonic(t *testing.T) {
	prev := ConvertSize(0)
	for _, n := range []int64{1, 2, 99999, 100000, 100001, 5 << 20, 1 << 40} {
		cur := ConvertSize(n)
		if cur < prev {
			t.Fatalf("ConvertSize(%d) = %v is below previous %v", n, cur, prev)
		}
		prev = cur
	}
}

func TestContainsAnyIsCaseSensitive(t *testing.T) {
	phrases := []string{"star wars"}

	assert.False(t, ContainsAny("My Star Wars Photo.png", phrases))
	assert.True(t, ContainsAny("my star wars photo.png", phrases))
}

func TestContainsAnyDefaultChecklist(t *testing.T) {
	phrases := []string{"captain tsubasa", "star wars"}

	assert.True(t, ContainsAny("captain tsubasa vol 1.cbz", phrases))
	assert.True(t, ContainsAny("star wars.mkv", phrases))
	assert.False(t, ContainsAny("star trek.mkv", phrases))
	assert.False(t, ContainsAny("anything", nil))
}
