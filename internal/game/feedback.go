package game

import "strings"

// FeedbackKind classifies the outcome of a guess.
type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackCorrect
	FeedbackAlreadyFound
	FeedbackBadLetters
	FeedbackTooShort
	FeedbackMissingRequiredLetter
	FeedbackUnrecognizedWord
)

func (k FeedbackKind) String() string {
	switch k {
	case FeedbackCorrect:
		return "correct"
	case FeedbackAlreadyFound:
		return "already_found"
	case FeedbackBadLetters:
		return "bad_letters"
	case FeedbackTooShort:
		return "too_short"
	case FeedbackMissingRequiredLetter:
		return "missing_required_letter"
	case FeedbackUnrecognizedWord:
		return "unrecognized_word"
	default:
		return "none"
	}
}

// Feedback is the one-line response to a guess.
type Feedback struct {
	Kind       FeedbackKind
	Word       string
	BadLetters []rune
	// NearMiss is set on unrecognized words one edit away from an answer
	// the player has not found yet.
	NearMiss bool
}

// Good reports whether the guess was accepted.
func (f Feedback) Good() bool { return f.Kind == FeedbackCorrect }

// Message renders the feedback for display.
func (f Feedback) Message() string {
	switch f.Kind {
	case FeedbackCorrect:
		return "correct"
	case FeedbackAlreadyFound:
		return "already found"
	case FeedbackBadLetters:
		parts := make([]string, len(f.BadLetters))
		for i, r := range f.BadLetters {
			parts[i] = string(r)
		}
		return "bad letters: " + strings.Join(parts, ", ")
	case FeedbackTooShort:
		return "too short"
	case FeedbackMissingRequiredLetter:
		return "missing required letter"
	case FeedbackUnrecognizedWord:
		if f.NearMiss {
			return "not a recognized word (so close!)"
		}
		return "not a recognized word"
	default:
		return ""
	}
}
