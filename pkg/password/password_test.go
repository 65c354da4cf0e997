package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		password string
		missing  []string
	}{
		{
			name:     "valid password",
			password: "Str0ng!Pw",
			missing:  nil,
		},
		{
			name:     "everything missing",
			password: "",
			missing: []string{
				"at least 8 characters",
				"a number",
				"an uppercase letter",
				"a lowercase letter",
				"a special character",
			},
		},
		{
			name:     "short but otherwise complete",
			password: "aB3!",
			missing:  []string{"at least 8 characters"},
		},
		{
			name:     "no digit",
			password: "Abcdefg!",
			missing:  []string{"a number"},
		},
		{
			name:     "no uppercase",
			password: "abcdefg1!",
			missing:  []string{"an uppercase letter"},
		},
		{
			name:     "no lowercase",
			password: "ABCDEFG1!",
			missing:  []string{"a lowercase letter"},
		},
		{
			name:     "no special character",
			password: "Abcdefg1",
			missing:  []string{"a special character"},
		},
		{
			name:     "multiple missing classes reported together",
			password: "abcdefgh",
			missing:  []string{"a number", "an uppercase letter", "a special character"},
		},
		{
			name:     "backtick counts as special",
			password: "Abcdefg1`",
			missing:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.missing, Check(tt.password))
		})
	}
}
