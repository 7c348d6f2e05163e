package video

import "strings"

// Rating is the age classification of a catalog title.
type Rating string

const (
	RatingER    Rating = "ER"
	RatingFree  Rating = "L"
	RatingAge10 Rating = "10"
	RatingAge12 Rating = "12"
	RatingAge14 Rating = "14"
	RatingAge16 Rating = "16"
	RatingAge18 Rating = "18"
)

var ratings = []Rating{
	RatingER,
	RatingFree,
	RatingAge10,
	RatingAge12,
	RatingAge14,
	RatingAge16,
	RatingAge18,
}

// ParseRating resolves a rating from its string form.
func ParseRating(s string) (Rating, bool) {
	for _, r := range ratings {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

// Valid reports whether the rating is a known classification.
func (r Rating) Valid() bool {
	_, ok := ParseRating(string(r))
	return ok
}

func (r Rating) String() string {
	return string(r)
}
