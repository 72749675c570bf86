package review

import "math"

// ApplyNewReview folds one new rating into a product's running average.
// The result is rounded to one decimal place, so repeated application
// matches what reviewers see on the product card.
func ApplyNewReview(currentRating float64, currentCount int64, newRating float64) (float64, int64) {
	if currentCount <= 0 {
		return round1(newRating), 1
	}
	next := (currentRating*float64(currentCount) + newRating) / float64(currentCount+1)
	return round1(next), currentCount + 1
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
