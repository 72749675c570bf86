package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyNewReview(t *testing.T) {
	tests := []struct {
		name           string
		currentRating  float64
		currentCount   int64
		newRating      float64
		expectedRating float64
		expectedCount  int64
	}{
		{
			name:           "first review is taken exactly",
			currentRating:  0,
			currentCount:   0,
			newRating:      4,
			expectedRating: 4.0,
			expectedCount:  1,
		},
		{
			name:           "large count barely moves the average",
			currentRating:  4.8,
			currentCount:   256,
			newRating:      5,
			expectedRating: 4.8,
			expectedCount:  257,
		},
		{
			name:           "low rating pulls the average down",
			currentRating:  5.0,
			currentCount:   1,
			newRating:      1,
			expectedRating: 3.0,
			expectedCount:  2,
		},
		{
			name:           "result is rounded to one decimal",
			currentRating:  4.0,
			currentCount:   2,
			newRating:      5,
			expectedRating: 4.3,
			expectedCount:  3,
		},
		{
			name:           "negative count treated as no reviews",
			currentRating:  4.5,
			currentCount:   -3,
			newRating:      2,
			expectedRating: 2.0,
			expectedCount:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rating, count := ApplyNewReview(tt.currentRating, tt.currentCount, tt.newRating)
			assert.InDelta(t, tt.expectedRating, rating, 1e-9)
			assert.Equal(t, tt.expectedCount, count)
		})
	}
}
