package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type testLanguagePreference struct {
	Language string `json:"language" validate:"required,language_code"`
}

type testFeatureRequest struct {
	Feature string `json:"feature" validate:"required,feature_name"`
}

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_Validate_Credentials(t *testing.T) {
	tests := []struct {
		name      string
		input     testCredentials
		wantErr   bool
		wantField string
	}{
		{
			name:  "valid credentials",
			input: testCredentials{Email: "traveler@example.com", Password: "Sunny-Road-2025!"},
		},
		{
			name:      "missing email",
			input:     testCredentials{Password: "Sunny-Road-2025!"},
			wantErr:   true,
			wantField: "email",
		},
		{
			name:      "malformed email",
			input:     testCredentials{Email: "not-an-email", Password: "Sunny-Road-2025!"},
			wantErr:   true,
			wantField: "email",
		},
		{
			name:      "password too short",
			input:     testCredentials{Email: "traveler@example.com", Password: "Ab1!"},
			wantErr:   true,
			wantField: "password",
		},
		{
			name:      "password without uppercase",
			input:     testCredentials{Email: "traveler@example.com", Password: "sunny-road-2025!"},
			wantErr:   true,
			wantField: "password",
		},
		{
			name:      "password without special character",
			input:     testCredentials{Email: "traveler@example.com", Password: "SunnyRoad2025"},
			wantErr:   true,
			wantField: "password",
		},
		{
			name:      "password without number",
			input:     testCredentials{Email: "traveler@example.com", Password: "Sunny-Road!"},
			wantErr:   true,
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Validate(&tt.input)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			// Error messages use the JSON field name
			assert.Contains(t, validationErr.Errors, tt.wantField)
		})
	}
}

func TestValidator_Validate_LanguageCode(t *testing.T) {
	tests := []struct {
		name     string
		language string
		wantErr  bool
	}{
		{name: "english", language: "en"},
		{name: "japanese", language: "ja"},
		{name: "three letters", language: "eng", wantErr: true},
		{name: "uppercase", language: "EN", wantErr: true},
		{name: "empty", language: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Validate(&testLanguagePreference{Language: tt.language})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Validate_FeatureName(t *testing.T) {
	tests := []struct {
		name    string
		feature string
		wantErr bool
	}{
		{name: "simple name", feature: "view_places"},
		{name: "with digits", feature: "tier2_sync"},
		{name: "uppercase rejected", feature: "ViewPlaces", wantErr: true},
		{name: "hyphens rejected", feature: "view-places", wantErr: true},
		{name: "single character rejected", feature: "x", wantErr: true},
		{name: "empty rejected", feature: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Validate(&testFeatureRequest{Feature: tt.feature})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{"email": "email is required"}}
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "email is required")
}

func TestHelperFunctions(t *testing.T) {
	assert.True(t, IsValidEmail("traveler@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))

	assert.True(t, IsValidPassword("Sunny-Road-2025!"))
	assert.False(t, IsValidPassword("weak"))

	assert.True(t, IsValidLanguageCode("ja"))
	assert.False(t, IsValidLanguageCode("japanese"))

	assert.True(t, IsValidFeatureName("create_journey"))
	assert.False(t, IsValidFeatureName("Create Journey"))
}
