package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/mapcat/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "iconset not found",
			wantStr: "[NOT_FOUND] iconset not found",
		},
		{
			name:    "unknown_kind_error",
			code:    errors.ErrUnknownKind,
			message: "unknown resource kind",
			wantStr: "[UNKNOWN_KIND] unknown resource kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidPattern, "invalid filter %q", "(")
	assert.Equal(t, `invalid filter "("`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "cannot load config")

		assert.Equal(t, errors.ErrConfigLoad, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[CONFIG_LOAD] cannot load config: base error", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrConfigValid, "missing path").
		WithDetail("key", "icon").
		WithDetail("file", "/etc/mapcat.toml")

	assert.Equal(t, "icon", err.Details["key"])
	assert.Equal(t, "/etc/mapcat.toml", err.Details["file"])
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrLangNotFound, "no such language")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrLangNotFound))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrNotFound))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrNotFound))
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrUnknownKind, "bad kind").WithDetail("kind", "iconz")

	assert.Equal(t, errors.ErrUnknownKind, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "iconz", details["kind"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err := errors.Wrap(stderrors.New("boom"), errors.ErrConfigParse, "bad toml")

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrConfigParse, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrConfigLoad, "")))
}
