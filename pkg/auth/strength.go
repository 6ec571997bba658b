package auth

import "strings"

// Strength buckets a password by how many policy criteria it meets.
type Strength string

const (
	StrengthWeak   Strength = "Weak"
	StrengthFair   Strength = "Fair"
	StrengthGood   Strength = "Good"
	StrengthStrong Strength = "Strong"
)

// PasswordStrength scores a candidate password: length, lowercase,
// uppercase, digit, and special character each count once.
func PasswordStrength(password string) Strength {
	score := 0
	if len(password) >= 8 {
		score++
	}
	if strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") {
		score++
	}
	if strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		score++
	}
	if strings.ContainsAny(password, "0123456789") {
		score++
	}
	if strings.ContainsAny(password, "!@#$%^&*") {
		score++
	}

	switch {
	case score <= 1:
		return StrengthWeak
	case score == 2:
		return StrengthFair
	case score == 3:
		return StrengthGood
	default:
		return StrengthStrong
	}
}
