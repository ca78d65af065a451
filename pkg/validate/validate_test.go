package validate

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	Username        string `form:"username" validate:"required,max=150"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"eqfield=Password"`
}

func TestFieldErrors(t *testing.T) {
	t.Parallel()
	v := NewCustomValidator()

	err := v.Validate(signUp{Email: "nope", Password: "a", ConfirmPassword: "b"})
	require.Error(t, err)

	fields, ok := FieldErrors(err)
	require.True(t, ok)
	require.Equal(t, map[string]string{
		"username":         "This field is required.",
		"email":            "Enter a valid email address.",
		"confirm_password": "Passwords do not match.",
	}, fields)

	_, ok = FieldErrors(errors.New("boom"))
	require.False(t, ok)

	require.NoError(t, v.Validate(signUp{Username: "u", Email: "u@example.com", Password: "p", ConfirmPassword: "p"}))
}
