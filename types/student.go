package types

import (
	"strconv"
	"strings"
)

// Gender is the normalized gender category of a student.
//
// Raw spreadsheet values are normalized once at the ingestion boundary via
// ParseGender; the rest of the library only ever sees the closed enum.
type Gender int

const (
	// GenderBoy is the normalized "boy" category (sheet value "Α"/ΑΓΟΡΙ).
	GenderBoy Gender = iota

	// GenderGirl is the normalized "girl" category (sheet value "Κ"/ΚΟΡΙΤΣΙ).
	GenderGirl
)

// String returns the string representation of the gender.
func (g Gender) String() string {
	switch g {
	case GenderBoy:
		return "Boy"
	case GenderGirl:
		return "Girl"
	default:
		return "Unknown"
	}
}

// ParseGender normalizes a raw spreadsheet gender value.
//
// Matching is case-insensitive on the first letter after trimming whitespace
// and accepts both the Greek letters and their Latin homoglyphs: Α/A map to
// GenderBoy, Κ/K map to GenderGirl. Any other value, including an empty cell,
// defaults to GenderBoy.
//
// Parameters:
//   - raw: Cell value as read from the sheet
//
// Returns:
//   - Gender: The normalized category
func ParseGender(raw string) Gender {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(s, "Κ"), strings.HasPrefix(s, "K"):
		return GenderGirl
	default:
		return GenderBoy
	}
}

// Proficiency is the normalized language-proficiency category of a student.
type Proficiency int

const (
	// Proficient is the normalized "good knowledge" category (sheet value "Ν"/ΝΑΙ).
	Proficient Proficiency = iota

	// NotProficient is the normalized "limited knowledge" category (sheet value "Ο"/ΟΧΙ).
	NotProficient
)

// String returns the string representation of the proficiency.
func (p Proficiency) String() string {
	switch p {
	case Proficient:
		return "Proficient"
	case NotProficient:
		return "NotProficient"
	default:
		return "Unknown"
	}
}

// ParseProficiency normalizes a raw spreadsheet proficiency value.
//
// Matching is case-insensitive on the first letter after trimming whitespace
// and accepts both the Greek letters and their Latin homoglyphs: Ν/N map to
// Proficient, Ο/O map to NotProficient. Any other value, including an empty
// cell, defaults to Proficient.
//
// Parameters:
//   - raw: Cell value as read from the sheet
//
// Returns:
//   - Proficiency: The normalized category
func ParseProficiency(raw string) Proficiency {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(s, "Ν"), strings.HasPrefix(s, "N"):
		return Proficient
	case strings.HasPrefix(s, "Ο"), strings.HasPrefix(s, "O"):
		return NotProficient
	default:
		return Proficient
	}
}

// Performance is the academic performance grade of a student (1 to 3).
//
// The high grade is the driving balance metric: the optimizer always reduces
// the high-performer spread before the demographic ones.
type Performance int

const (
	// PerformanceLow is the lowest grade.
	PerformanceLow Performance = 1

	// PerformanceMid is the middle grade.
	PerformanceMid Performance = 2

	// PerformanceHigh is the highest grade and the primary balance metric.
	PerformanceHigh Performance = 3
)

// IsHigh reports whether the grade is the highest one.
func (p Performance) IsHigh() bool {
	return p == PerformanceHigh
}

// String returns the string representation of the grade.
func (p Performance) String() string {
	switch p {
	case PerformanceLow:
		return "Low"
	case PerformanceMid:
		return "Mid"
	case PerformanceHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// ParsePerformance normalizes a raw spreadsheet performance value.
//
// Accepts integers and numeric strings (including float renderings such as
// "3.0"). Values outside the 1..3 range and unparseable values default to
// PerformanceLow.
//
// Parameters:
//   - raw: Cell value as read from the sheet
//
// Returns:
//   - Performance: The normalized grade
func ParsePerformance(raw string) Performance {
	s := strings.TrimSpace(raw)
	if s == "" {
		return PerformanceLow
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return PerformanceLow
	}

	switch Performance(f) {
	case PerformanceMid:
		return PerformanceMid
	case PerformanceHigh:
		return PerformanceHigh
	default:
		return PerformanceLow
	}
}

// Student is an immutable student record.
//
// The name is the identity: lookups, friend links and team memberships all
// reference students by name. Attribute fields are normalized once during
// ingestion and never mutated afterwards; the optimizer only ever moves names
// between team member lists.
type Student struct {
	// Name uniquely identifies the student across the roster.
	Name string `json:"name"`

	// Gender is the normalized gender category.
	Gender Gender `json:"gender"`

	// Proficiency is the normalized language-proficiency category.
	Proficiency Proficiency `json:"proficiency"`

	// Performance is the academic grade (1..3).
	Performance Performance `json:"performance"`

	// Friends lists the names this student declared as friends.
	// Links are directional as declared; pairing treats them symmetrically,
	// so a one-sided declaration still forms a pair.
	Friends []string `json:"friends,omitempty"`

	// Locked marks the student as immovable. Locked students keep their
	// team for the whole run and are never the moving side of a swap.
	Locked bool `json:"locked,omitempty"`
}

// HasFriend reports whether the student declared the given name as a friend.
func (s *Student) HasFriend(name string) bool {
	for _, f := range s.Friends {
		if f == name {
			return true
		}
	}

	return false
}
