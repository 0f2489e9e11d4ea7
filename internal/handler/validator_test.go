package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Validator Tests - Demonstrating 5-Case Testing Model
// =============================================================================

func TestValidator_PlayerName(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		// CASE 1: Best Case
		{"simple", "Aria", false},
		{"with space", "Sir Aria", false},
		{"unicode", "Åsa", false},

		// CASE 2: Boundary Case
		{"one char", "a", false},
		{"exactly max length", strings.Repeat("a", MaxPlayerNameLength), false},
		{"over max length", strings.Repeat("a", MaxPlayerNameLength+1), true},

		// CASE 3: Edge Case
		{"padded", "  Aria  ", false},

		// CASE 4: Invalid Case
		{"empty", "", true},
		{"blank", "   ", true},
		{"with newline", "ar\nia", true},
		{"with tab", "ar\tia", true},
		{"with null byte", "ar\x00ia", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(LoginRequest{Name: tt.input})
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidator_ArenaAction(t *testing.T) {
	InitValidator()
	v := GetValidator()

	for _, action := range []string{"attack", "block", "heal"} {
		assert.NoError(t, v.ValidateStruct(ArenaActionRequest{Action: action}), action)
	}
	for _, action := range []string{"", "Attack", "dance"} {
		assert.Error(t, v.ValidateStruct(ArenaActionRequest{Action: action}), action)
	}
}

func TestValidator_Question(t *testing.T) {
	InitValidator()
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(AskRequest{Question: "Will I win?"}))
	assert.Error(t, v.ValidateStruct(AskRequest{Question: ""}))
	assert.Error(t, v.ValidateStruct(AskRequest{Question: strings.Repeat("?", 301)}))
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	err := GetValidator().ValidateStruct(ArenaActionRequest{Action: "dance"})
	require.Error(t, err)

	fields := FormatValidationError(err)

	assert.Equal(t, "Must be one of attack, block, heal", fields["action"])
	assert.Nil(t, FormatValidationError(nil))
}
