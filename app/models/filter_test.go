package models

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesStudent(t *testing.T) {
	tests := []struct {
		name         string
		grade        string
		classLetter  string
		qGrade       string
		qClassLetter string
		want         bool
	}{
		{"exact match", "5", "B", "5", "B", true},
		{"class letter is case-insensitive", "5", "b", "5", "B", true},
		{"class letter is case-insensitive both ways", "5", "B", "5", "b", true},
		{"grade mismatch", "5", "B", "6", "B", false},
		{"class mismatch", "5", "A", "5", "B", false},
		{"wildcard grade matches any grade", "all", "B", "7", "B", true},
		{"wildcard class matches any class", "5", "all", "5", "C", true},
		{"double wildcard matches everything", "all", "all", "3", "a", true},
		{"wildcard grade still checks class", "all", "A", "5", "B", false},
		{"grade is compared exactly, not case-folded", "5A", "B", "5a", "B", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesStudent(tt.grade, tt.classLetter, tt.qGrade, tt.qClassLetter)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesStudentWildcardAgainstManyQueries(t *testing.T) {
	for _, grade := range []string{"1", "5", "12"} {
		for _, class := range []string{"A", "b", "C"} {
			assert.True(t, MatchesStudent("all", "all", grade, class))
			assert.True(t, MatchesStudent("all", class, grade, class))
			assert.True(t, MatchesStudent(grade, "all", grade, class))
		}
	}
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		millis, _, ok := strings.Cut(id, "-")
		assert.True(t, ok, "id %s has no timestamp prefix", id)
		_, err := strconv.ParseInt(millis, 10, 64)
		assert.NoError(t, err, "id %s prefix is not numeric", id)
	}
}
