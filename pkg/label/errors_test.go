package label

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError(ErrorTypeGh, "boom", nil)
	assert.Equal(t, "gh error: boom", err.Error())

	err.Resource = `label "bug"`
	assert.Equal(t, `gh error for label "bug": boom`, err.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewError(ErrorTypeParse, "failed to parse", cause)
	assert.ErrorIs(t, err, cause)
}

func TestClassifyGhError(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   ErrorType
	}{
		{"already exists code", `gh: Validation Failed (HTTP 422) {"errors":[{"code":"already_exists"}]}`, ErrorTypeAlreadyExists},
		{"not found text", "gh: Not Found (HTTP 404)", ErrorTypeNotFound},
		{"404 status", "HTTP 404", ErrorTypeNotFound},
		{"not logged in", "gh: To get started with GitHub CLI, please run: gh auth login", ErrorTypeAuth},
		{"authentication", "gh: authentication failed", ErrorTypeAuth},
		{"anything else", "gh: Internal Server Error (HTTP 500)", ErrorTypeGh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyGhError(tt.stderr, "")
			assert.Equal(t, tt.want, err.Type)
		})
	}
}

func TestIsNotFoundAndIsAlreadyExists(t *testing.T) {
	assert.True(t, IsNotFound(NewError(ErrorTypeNotFound, "gone", nil)))
	assert.False(t, IsNotFound(NewError(ErrorTypeGh, "boom", nil)))
	assert.False(t, IsNotFound(errors.New("plain")))

	assert.True(t, IsAlreadyExists(NewError(ErrorTypeAlreadyExists, "dup", nil)))
	assert.False(t, IsAlreadyExists(NewError(ErrorTypeNotFound, "gone", nil)))
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add("new[0].color", "", "color is required for new label \"bug\"")
	require.True(t, errs.HasErrors())
	assert.Equal(t, `validation error for field 'new[0].color': color is required for new label "bug"`, errs.Error())

	errs.Add("new[1].color", "zzz", "invalid hex color format")
	assert.Contains(t, errs.Error(), "validation failed with 2 errors")
	assert.Contains(t, errs.Error(), "(value: zzz)")
}
