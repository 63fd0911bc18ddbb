package services

import "regexp"

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func validChoice(choices []string, val string) bool {
	for _, c := range choices {
		if c == val {
			return true
		}
	}
	return false
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}
