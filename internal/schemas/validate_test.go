package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	for _, name := range []string{Student, Courses, Suggestions} {
		t.Run(name, func(t *testing.T) {
			data, err := schemaFiles.ReadFile(name)
			require.NoError(t, err)

			var v map[string]any
			require.NoError(t, json.Unmarshal(data, &v))
			assert.Contains(t, v, "$schema")
		})
	}
}

func TestValidate_Student(t *testing.T) {
	valid := `{"id":"s1","name":"Jordan","email":"j@example.com","avatar":"",
		"totalCourses":4,"completedCourses":1,"currentCourses":2}`
	assert.NoError(t, Validate(Student, []byte(valid)))

	missing := `{"id":"s1","name":"Jordan"}`
	err := Validate(Student, []byte(missing))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, Student, ve.Schema)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidate_CoursesRejectsUnknownStatus(t *testing.T) {
	doc := `[{"id":"c1","title":"T","instructor":"I","progress":10,"totalLessons":10,
		"completedLessons":1,"status":"archived"}]`

	err := Validate(Courses, []byte(doc))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Errors[0].Field, "status")
}

func TestValidate_SuggestionsRejectsUnknownPriority(t *testing.T) {
	doc := `[{"id":"1","type":"content","title":"T","description":"D","priority":"urgent"}]`
	assert.Error(t, Validate(Suggestions, []byte(doc)))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing.schema.json", []byte(`{}`))
	require.Error(t, err)

	var le *SchemaLoadError
	require.True(t, errors.As(err, &le))
	assert.Contains(t, err.Error(), "missing.schema.json")
}

func TestValidateJSONString_RootField(t *testing.T) {
	err := ValidateJSONString(`{"type":"array"}`, `{"not":"an array"}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "(root)", ve.Errors[0].Field)
}
