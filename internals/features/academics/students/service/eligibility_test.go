// file: internals/features/academics/students/service/eligibility_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGrade(t *testing.T) {
	assert.Equal(t, "grade 10", NormalizeGrade("Grade 10"))
	assert.Equal(t, "grade 10", NormalizeGrade("  GRADE 10  "))
	assert.Equal(t, "", NormalizeGrade("   "))

	// Inconsistently cased roster values normalize to the same key.
	assert.Equal(t, NormalizeGrade("GRADE 10"), NormalizeGrade(" grade 10 "))
	assert.NotEqual(t, NormalizeGrade("Grade 1"), NormalizeGrade("Grade 10"))
}
