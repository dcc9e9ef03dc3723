package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrInput,
		ErrDataSource,
		ErrParse,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .bikeshare.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "data source error",
			code:       ErrDataSource,
			message:    "Can't read trip data for chicago",
			suggestion: "Check data_dir in .bikeshare.yaml",
		},
		{
			name:       "parse error",
			code:       ErrParse,
			message:    "Start Time on row 3 isn't a timestamp",
			suggestion: "Fix the value in the CSV file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "basic error formatting",
			err:           New(ErrConfig, "Invalid configuration", "Check .bikeshare.yaml syntax"),
			expectedParts: []string{"✗", "Invalid configuration", "Check .bikeshare.yaml syntax"},
		},
		{
			name:          "error without suggestion",
			err:           New(ErrParse, "Bad timestamp", ""),
			expectedParts: []string{"Bad timestamp"},
			notExpected:   []string{"\n\n  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("open chicago.csv: no such file or directory")
	wrapped := Wrap(cause, "Can't read trip data")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrDataSource, wrapped.Code, "Wrap should default to ErrDataSource code")
	assert.Equal(t, cause, wrapped.Cause)
	assert.Contains(t, wrapped.Error(), "no such file or directory")
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("unable to parse date")
	wrapped := WrapWithCode(cause, ErrParse, "Bad Start Time", "Fix the CSV")

	assert.Equal(t, ErrParse, wrapped.Code)
	assert.Equal(t, "Fix the CSV", wrapped.Suggestion)
	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, cause, wrapped.Unwrap())
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrParse))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("open washington.csv: permission denied"),
		ErrDataSource,
		"Can't read trip data for washington",
		"Check file permissions",
	)

	lines := strings.Split(err.Error(), "\n")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "✗"))
	assert.Contains(t, lines[0], "Can't read trip data for washington")
}
