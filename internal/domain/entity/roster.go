package entity

import "strings"

type ClassInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AcademicYear string `json:"academicYear"`
	AgeGroupID   string `json:"ageGroupId,omitempty"`
}

type Student struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Allergy string `json:"allergy,omitempty"`
}

// HasAllergy is true for any non-blank allergy note.
func (s Student) HasAllergy() bool {
	return strings.TrimSpace(s.Allergy) != ""
}

// ClassGroup summarizes one class of the latest academic year. Err holds the
// student fetch failure for this class only.
type ClassGroup struct {
	Class               ClassInfo `json:"class"`
	TotalStudents       int       `json:"totalStudents"`
	StudentsWithAllergy int       `json:"studentsWithAllergy"`
	Err                 string    `json:"error,omitempty"`
}

func (g ClassGroup) Failed() bool {
	return g.Err != ""
}
