// Package quote supplies the dashboard's daily quote and greeting.
package quote

import "time"

// Quote is a study motivation blurb with attribution.
type Quote struct {
	Text   string
	Author string
}

var quotes = []Quote{
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt"},
	{"Education is the most powerful weapon which you can use to change the world.", "Nelson Mandela"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson"},
	{"The expert in anything was once a beginner.", "Helen Hayes"},
	{"Learning never exhausts the mind.", "Leonardo da Vinci"},
	{"Knowledge is power, but enthusiasm pulls the switch.", "Steve Dahl"},
	{"The capacity to learn is a gift; the ability to learn is a skill; the willingness to learn is a choice.", "Brian Herbert"},
	{"Study hard, for the well is deep, and our brains are shallow.", "Richard Baxter"},
	{"The beautiful thing about learning is that no one can take it away from you.", "B.B. King"},
	{"Live as if you were to die tomorrow. Learn as if you were to live forever.", "Mahatma Gandhi"},
	{"The more that you read, the more things you will know. The more that you learn, the more places you'll go.", "Dr. Seuss"},
	{"Education is not preparation for life; education is life itself.", "John Dewey"},
	{"The only person who is educated is the one who has learned how to learn and change.", "Carl Rogers"},
}

// Daily picks the quote for the given day. The same day always yields the
// same quote.
func Daily(now time.Time) Quote {
	dayOfYear := now.YearDay()
	return quotes[dayOfYear%len(quotes)]
}

// Greeting returns the salutation for the hour of day.
func Greeting(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return "Good Morning!"
	case hour >= 12 && hour < 17:
		return "Good Afternoon!"
	case hour >= 17 && hour < 21:
		return "Good Evening!"
	default:
		return "Good Night!"
	}
}
