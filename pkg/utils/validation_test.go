package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

type visitRequest struct {
	Date     string   `json:"date" validate:"required"`
	Exercise float64  `json:"exercise" validate:"gte=0,lte=7"`
	Kind     string   `json:"kind,omitempty" validate:"omitempty,oneof=lab clinic"`
	Visits   []string `json:"visits" validate:"min=1,max=2"`
	Internal string   `json:"-" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	valid := visitRequest{Date: "2024-01-01", Exercise: 3, Visits: []string{"a"}, Internal: "x"}
	require.NoError(t, ValidateStruct(valid))

	tests := []struct {
		name    string
		mutate  func(*visitRequest)
		field   string
		message string
	}{
		{"required", func(v *visitRequest) { v.Date = "" }, "date", "date is required"},
		{"gte", func(v *visitRequest) { v.Exercise = -1 }, "exercise", "exercise must be at least 0"},
		{"lte", func(v *visitRequest) { v.Exercise = 8 }, "exercise", "exercise must be at most 7"},
		{"oneof", func(v *visitRequest) { v.Kind = "home" }, "kind", "kind must be one of: lab clinic"},
		{"min", func(v *visitRequest) { v.Visits = nil }, "visits", "visits must have at least 1 entries"},
		{"max", func(v *visitRequest) { v.Visits = []string{"a", "b", "c"} }, "visits", "visits must have at most 2 entries"},
		{"untagged name", func(v *visitRequest) { v.Internal = "" }, "Internal", "Internal is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := ValidateStruct(req)
			var verrs *pkgerrors.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, []string{tt.message}, verrs.ToMap()[tt.field])
		})
	}
}

func TestValidateStruct_NonStruct(t *testing.T) {
	err := ValidateStruct(42)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestRFC3339(t *testing.T) {
	at := time.Date(2024, 6, 15, 8, 30, 0, 0, time.FixedZone("ICT", 7*3600))
	s := FormatRFC3339(at)
	assert.Equal(t, "2024-06-15T01:30:00Z", s)

	parsed, err := ParseRFC3339(s)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(at))

	_, err = ParseRFC3339("2024-06-15")
	assert.Error(t, err)
	assert.Equal(t, time.UTC, NowUTC().Location())
}
