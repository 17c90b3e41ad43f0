package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		cents   int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"12", 1200, false},
		{"0.01", 1, false},
		{"12.344", 1234, false},
		{"12.345", 1235, false},
		{"12.346", 1235, false},
		{".5", 50, false},
		{"", 0, true},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"1.2.3", 0, true},
		{"abc", 0, true},
		{"12.3a", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.cents, m.Cents)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "12.34", FromCents(1234).String())
	assert.Equal(t, "0.05", FromCents(5).String())
	assert.Equal(t, "-3.00", FromCents(-300).String())
	assert.Equal(t, "1000.00", FromCents(100000).String())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, FromCents(1).Validate())
	assert.ErrorIs(t, FromCents(0).Validate(), ErrInvalidAmount)
	assert.ErrorIs(t, FromCents(-100).Validate(), ErrInvalidAmount)
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, int64(300), FromCents(100).Add(FromCents(200)).Cents)
	assert.Equal(t, int64(-100), FromCents(100).Sub(FromCents(200)).Cents)
	assert.True(t, FromCents(0).IsZero())
	assert.True(t, FromCents(1).IsPositive())
	assert.False(t, FromCents(-1).IsPositive())
}
