package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDerivesClassification(t *testing.T) {
	tests := []struct {
		code         string
		wantCategory Category
		wantSeverity Severity
	}{
		{ErrCodeConfigInvalid, CategoryConfig, SeverityError},
		{ErrCodeDirRead, CategoryIO, SeverityWarning},
		{ErrCodeMetadata, CategoryIO, SeverityWarning},
		{ErrCodeRecursiveSize, CategoryIO, SeverityWarning},
		{ErrCodeInvalidPath, CategoryValidation, SeverityError},
		{ErrCodeInternal, CategoryInternal, SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code, "boom", nil)
			assert.Equal(t, tt.wantCategory, err.Category)
			assert.Equal(t, tt.wantSeverity, err.Severity)
		})
	}
}

func TestErrorFormat(t *testing.T) {
	err := New(ErrCodeDirRead, "failed to list directory /x", nil)
	assert.Equal(t, "[ERR_201_DIR_READ] failed to list directory /x", err.Error())
}

func TestUnwrapAndIs(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := DirReadError("/x", cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, stderrors.Is(err, New(ErrCodeDirRead, "other message", nil)),
		"Is matches by code, not message")
	assert.False(t, stderrors.Is(err, New(ErrCodeMetadata, "other", nil)))
}

func TestWithDetail(t *testing.T) {
	err := MetadataError("/x/f.txt", nil).WithDetail("attempt", "1")
	require.NotNil(t, err.Details)
	assert.Equal(t, "/x/f.txt", err.Details["path"])
	assert.Equal(t, "1", err.Details["attempt"])
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(ErrCodeInternal, cause)
	require.NotNil(t, err)
	assert.Equal(t, "underlying", err.Message)
	assert.Equal(t, cause, err.Unwrap())

	assert.Nil(t, Wrap(ErrCodeInternal, nil))
}

func TestAccessors(t *testing.T) {
	err := RecursiveSizeError("/x/sub", nil)
	assert.Equal(t, ErrCodeRecursiveSize, GetCode(err))
	assert.Equal(t, CategoryIO, GetCategory(err))

	plain := stderrors.New("plain")
	assert.Equal(t, "", GetCode(plain))
	assert.Equal(t, Category(""), GetCategory(plain))
}
