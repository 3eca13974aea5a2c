package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeNotInitialized, "collector not initialized"),
			want: "[NOT_INITIALIZED] collector not initialized",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeCollection, "collect failed", fmt.Errorf("boom")),
			want: "[COLLECTION_FAILED] collect failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestStructuredError_IsAndAs(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := fmt.Errorf("scan: %w", Wrap(ErrCodeCollection, "invalid payload", cause))

	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, stderrors.Is(err, &StructuredError{Code: ErrCodeCollection}))
	assert.False(t, stderrors.Is(err, &StructuredError{Code: ErrCodeInit}))

	var se *StructuredError
	assert.True(t, stderrors.As(err, &se))
	assert.Equal(t, ErrCodeCollection, se.Code)
}

func TestIsCode_ValidationIsCollection(t *testing.T) {
	err := New(ErrCodeValidation, "missing field user_agent")

	assert.True(t, IsCode(err, ErrCodeValidation))
	assert.True(t, IsCode(err, ErrCodeCollection))
	assert.False(t, IsCode(err, ErrCodeInit))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrCodeCollection))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, InitFailedMessage, UserMessage(Wrap(ErrCodeInit, "playwright missing", fmt.Errorf("exec: not found"))))
	assert.Equal(t, "plain failure", UserMessage(fmt.Errorf("plain failure")))
	assert.Equal(t,
		"invalid payload: unexpected end of JSON input",
		UserMessage(Wrap(ErrCodeCollection, "invalid payload", fmt.Errorf("decode: %w", fmt.Errorf("unexpected end of JSON input")))),
	)
}
