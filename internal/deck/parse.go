package deck

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseRank parses a single rank character (e.g., 'A', 'T', '7').
// Parsing is case insensitive.
func ParseRank(c rune) (Rank, error) {
	switch unicode.ToUpper(c) {
	case 'A':
		return Ace, nil
	case '2':
		return Two, nil
	case '3':
		return Three, nil
	case '4':
		return Four, nil
	case '5':
		return Five, nil
	case '6':
		return Six, nil
	case '7':
		return Seven, nil
	case '8':
		return Eight, nil
	case '9':
		return Nine, nil
	case 'T':
		return Ten, nil
	case 'J':
		return Jack, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	default:
		return 0, fmt.Errorf("invalid rank %q", c)
	}
}

// ParseRankString parses a rank written as a word or symbol, accepting
// both the single-character form ("A", "T") and "10".
func ParseRankString(s string) (Rank, error) {
	s = strings.TrimSpace(s)
	if s == "10" {
		return Ten, nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("invalid rank %q", s)
	}
	return ParseRank(runes[0])
}

// ParseRanks parses a string of rank characters (e.g., "AT" or "A T 6")
// into a slice of ranks. Spaces are ignored.
func ParseRanks(s string) ([]Rank, error) {
	ranks := []Rank{}
	for _, c := range s {
		if unicode.IsSpace(c) {
			continue
		}
		rank, err := ParseRank(c)
		if err != nil {
			return nil, err
		}
		ranks = append(ranks, rank)
	}
	return ranks, nil
}

// MustParseRanks is like ParseRanks but panics on invalid input.
// Intended for tests and fixed literals.
func MustParseRanks(s string) []Rank {
	ranks, err := ParseRanks(s)
	if err != nil {
		panic(err)
	}
	return ranks
}
