package validator

import (
	"testing"

	domainerrors "smartfit/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type signUp struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Platform string `json:"platform" validate:"omitempty,oneof=ios android web"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		input    signUp
		wantErr  bool
		contains []string
	}{
		{name: "valid", input: signUp{Email: "a@b.co", Password: "secret1"}},
		{
			name:     "reports json field names",
			input:    signUp{Email: "nope", Password: "123"},
			wantErr:  true,
			contains: []string{"email must be a valid email", "password must be at least 6"},
		},
		{
			name:     "oneof lists choices",
			input:    signUp{Email: "a@b.co", Password: "secret1", Platform: "symbian"},
			wantErr:  true,
			contains: []string{"platform must be one of [ios android web]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			for _, want := range tt.contains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
