package models

import "strings"

// Wildcard is the reserved grade/classLetter value that matches any
// student query.
const Wildcard = "all"

// MatchesStudent reports whether a record scoped to (grade, classLetter) is
// visible to a student asking for (qGrade, qClassLetter). Grade must match
// exactly unless the record says "all"; classLetter matches
// case-insensitively unless the record says "all".
func MatchesStudent(grade, classLetter, qGrade, qClassLetter string) bool {
	if grade != Wildcard && grade != qGrade {
		return false
	}
	return classLetter == Wildcard || strings.EqualFold(classLetter, qClassLetter)
}
