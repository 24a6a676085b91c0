package services

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedSmsCheckin is one inbound message parsed into check-in fields.
// Nil means the message did not mention that field.
type ParsedSmsCheckin struct {
	DidWorkout  *bool
	HitCalories *bool
	Rating      *int
	Notes       *string
}

// Complete reports whether the parse carries both required booleans, which is
// what a single message must contain to stand in for a full day.
func (p *ParsedSmsCheckin) Complete() bool {
	return p != nil && p.DidWorkout != nil && p.HitCalories != nil
}

// ParseYesNo accepts exactly yes/y/no/n, case-insensitive. Anything else is nil.
func ParseYesNo(body string) *bool {
	text := strings.ToLower(strings.TrimSpace(body))
	switch text {
	case "yes", "y":
		v := true
		return &v
	case "no", "n":
		v := false
		return &v
	}
	return nil
}

var (
	workoutRe  = regexp.MustCompile(`(?i)workout\s*:\s*(yes|no|y|n)`)
	caloriesRe = regexp.MustCompile(`(?i)calories?\s*:\s*(yes|no|y|n)`)
	ratingRe   = regexp.MustCompile(`(?i)rating\s*:\s*(\d{1,2})`)
	notesRe    = regexp.MustCompile(`(?i)notes?\s*:\s*([\s\S]+)$`)
	compactRe  = regexp.MustCompile(`^\s*([YyNn])\s+([YyNn])(?:\s+(\d{1,2}))?(?:\s+([\s\S]+))?$`)
)

// parseKeyValueStyle handles "WORKOUT: yes\nCALORIES: no\nRATING: 7\nNOTES: ..."
// Every key is optional but at least one must be present.
func parseKeyValueStyle(body string) *ParsedSmsCheckin {
	text := strings.TrimSpace(body)

	workoutMatch := workoutRe.FindStringSubmatch(text)
	caloriesMatch := caloriesRe.FindStringSubmatch(text)
	ratingMatch := ratingRe.FindStringSubmatch(text)
	notesMatch := notesRe.FindStringSubmatch(text)

	if workoutMatch == nil && caloriesMatch == nil && ratingMatch == nil && notesMatch == nil {
		return nil
	}

	out := &ParsedSmsCheckin{}
	if workoutMatch != nil {
		out.DidWorkout = ParseYesNo(workoutMatch[1])
	}
	if caloriesMatch != nil {
		out.HitCalories = ParseYesNo(caloriesMatch[1])
	}
	if ratingMatch != nil {
		if n, err := strconv.Atoi(ratingMatch[1]); err == nil && n >= 1 && n <= 10 {
			out.Rating = &n
		}
	}
	if notesMatch != nil {
		notes := strings.TrimSpace(notesMatch[1])
		if notes != "" {
			out.Notes = &notes
		}
	}
	return out
}

// parseCompactStyle handles "Y N 7 felt tired".
func parseCompactStyle(body string) *ParsedSmsCheckin {
	text := strings.TrimSpace(body)

	match := compactRe.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	didWorkout := strings.EqualFold(match[1], "y")
	hitCalories := strings.EqualFold(match[2], "y")

	out := &ParsedSmsCheckin{
		DidWorkout:  &didWorkout,
		HitCalories: &hitCalories,
	}
	if match[3] != "" {
		if n, err := strconv.Atoi(match[3]); err == nil && n >= 1 && n <= 10 {
			out.Rating = &n
		}
	}
	if match[4] != "" {
		notes := strings.TrimSpace(match[4])
		if notes != "" {
			out.Notes = &notes
		}
	}
	return out
}

// ParseSmsBody tries the explicit key-value grammar first, then the compact
// grammar. Nil means the message is not a recognizable check-in.
func ParseSmsBody(body string) *ParsedSmsCheckin {
	if kv := parseKeyValueStyle(body); kv != nil {
		return kv
	}
	if compact := parseCompactStyle(body); compact != nil {
		return compact
	}
	return nil
}
