package core

import (
	"errors"
	"testing"
)

func TestValidateUserPreference(t *testing.T) {
	tests := []struct {
		name    string
		user    *UserPreference
		wantErr error
	}{
		{
			name: "valid user",
			user: &UserPreference{
				Id:          "U1",
				Budget:      Some(500000),
				Bedrooms:    Some(3),
				Bathrooms:   Some(2),
				Description: "Quiet neighborhood, modern kitchen",
			},
			wantErr: nil,
		},
		{
			name: "valid user with all attributes absent",
			user: &UserPreference{
				Id: "U2",
			},
			wantErr: nil,
		},
		{
			name:    "missing id",
			user:    &UserPreference{Budget: Some(500000)},
			wantErr: ErrMissingUserID,
		},
		{
			name:    "nil user",
			user:    nil,
			wantErr: ErrInvalidUserPreference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUserPreference(tt.user)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateUserPreference() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateUserPreference() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePropertyListing(t *testing.T) {
	tests := []struct {
		name     string
		property *PropertyListing
		wantErr  error
	}{
		{
			name: "valid property",
			property: &PropertyListing{
				Id:          "P1",
				Price:       Some(475000),
				Bedrooms:    Some(3),
				Bathrooms:   Some(2),
				LivingArea:  Some(2500),
				Description: "Newly renovated home",
			},
			wantErr: nil,
		},
		{
			name:    "missing id",
			property: &PropertyListing{Price: Some(475000)},
			wantErr: ErrMissingPropertyID,
		},
		{
			name:     "nil property",
			property: nil,
			wantErr:  ErrInvalidPropertyListing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePropertyListing(tt.property)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePropertyListing() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePropertyListing() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
