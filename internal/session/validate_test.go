package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barhopapp/barhop/internal/api"
	"github.com/barhopapp/barhop/internal/errors"
)

func TestIsAdult(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate time.Time
		want      bool
	}{
		{"exactly 18 today", time.Date(2008, 9, 1, 0, 0, 0, 0, time.UTC), true},
		{"18 tomorrow", time.Date(2008, 9, 2, 0, 0, 0, 0, time.UTC), false},
		{"clearly adult", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"clearly underage", time.Date(2015, 6, 15, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAdult(tt.birthDate, now))
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantCode errors.ErrorCode
	}{
		{"valid", "nina@example.com", "hunter22", ""},
		{"missing email", "", "hunter22", errors.ErrCodeValidationFailed},
		{"bad email", "nope", "hunter22", errors.ErrCodeValidationFailed},
		{"missing password", "nina@example.com", "", errors.ErrCodeValidationFailed},
		{"short password", "nina@example.com", "abc", errors.ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCredentials(tt.email, tt.password)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
			}
		})
	}
}

func TestValidateProfile(t *testing.T) {
	valid := validProfile()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validateProfile(valid))
	})

	t.Run("underage maps to its own code", func(t *testing.T) {
		p := valid
		p.BirthDate = time.Now().AddDate(-17, 0, 0)
		err := validateProfile(p)
		assert.Equal(t, errors.ErrCodeUnderage, errors.CodeOf(err))
	})

	t.Run("unknown account type", func(t *testing.T) {
		p := valid
		p.AccountType = api.AccountType("admin")
		err := validateProfile(p)
		assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
	})

	t.Run("bad photo url", func(t *testing.T) {
		p := valid
		p.PhotoURL = "not a url"
		err := validateProfile(p)
		assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
	})

	t.Run("photo url optional", func(t *testing.T) {
		p := valid
		p.PhotoURL = ""
		assert.NoError(t, validateProfile(p))
	})

	t.Run("missing phone", func(t *testing.T) {
		p := valid
		p.Phone = ""
		err := validateProfile(p)
		assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
	})
}
