package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestMonthBuckets(t *testing.T) {
	buckets := MonthBuckets([]time.Time{
		d(2024, time.March, 1),
		d(2024, time.March, 31),
		d(2024, time.January, 15),
		d(2024, time.December, 25),
	})

	assert.Equal(t, int64(1), buckets[0], "janvier")
	assert.Equal(t, int64(2), buckets[2], "mars")
	assert.Equal(t, int64(1), buckets[11], "décembre")
	assert.Equal(t, int64(0), buckets[5], "juin vide")
}

func TestMonthBucketsEmpty(t *testing.T) {
	buckets := MonthBuckets(nil)
	for i, n := range buckets {
		assert.Zerof(t, n, "mois %s", MonthNames[i])
	}
}

func TestCollapseStatus(t *testing.T) {
	rows := []Bucket{
		{Label: "", Count: 3}, // etat_contrat NULL
		{Label: "résilé", Count: 2},
		{Label: "suspendu", Count: 1},
	}

	out := CollapseStatus(rows)
	assert.Equal(t, []Bucket{
		{Label: LabelCancelled, Count: 2},
		{Label: LabelSuspended, Count: 1},
		{Label: LabelDoneOrOngoing, Count: 3},
	}, out)
}

func TestCollapseStatusEmpty(t *testing.T) {
	out := CollapseStatus(nil)
	assert.Len(t, out, 3, "les trois seaux sont toujours présents")
	assert.Equal(t, int64(0), Total(out))
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(0), Total(nil))
	assert.Equal(t, int64(6), Total([]Bucket{{Count: 2}, {Count: 4}}))
}
