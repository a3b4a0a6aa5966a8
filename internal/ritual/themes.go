package ritual

import "time"

// Theme describes one weekday's content rules: the display name, the seed
// bucket it draws from, and the joker the day spotlights.
type Theme struct {
	Name   string `json:"name"`
	Bucket string `json:"bucket"`
	Joker  string `json:"joker"`
}

// ThemeTable maps every weekday to its theme, indexed by time.Weekday
// (Sunday = 0). Saturday and Sunday share the Weekend bucket.
type ThemeTable [7]Theme

// DefaultThemes returns the fixed weekly rotation. These are business
// rules, not configuration.
func DefaultThemes() ThemeTable {
	return ThemeTable{
		time.Sunday:    {Name: "Weekend Ritual", Bucket: "Weekend", Joker: "Joker"},
		time.Monday:    {Name: "Madness Monday", Bucket: "Monday", Joker: "Madness"},
		time.Tuesday:   {Name: "Twosday", Bucket: "Tuesday", Joker: "Joker"},
		time.Wednesday: {Name: "Wee Wednesday", Bucket: "Wednesday", Joker: "Wee Joker"},
		time.Thursday:  {Name: "Threshold Thursday", Bucket: "Thursday", Joker: "Joker"},
		time.Friday:    {Name: "Foil Friday", Bucket: "Friday", Joker: "Joker"},
		time.Saturday:  {Name: "Weekend Ritual", Bucket: "Weekend", Joker: "Joker"},
	}
}

// BucketNames lists every bucket a pool may carry, in schedule order.
func BucketNames() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Weekend"}
}
