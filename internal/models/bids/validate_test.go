package bids

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func num(f float64) *float64 { return &f }

func TestValidate_ReportsEveryViolation(t *testing.T) {
	errs := Validate(Input{Amount: num(0), Timeline: num(5), Proposal: "short"})
	assert.Equal(t, FieldErrors{InvalidAmount, ProposalTooShort}, errs)
}

func TestValidate_ProposalOfExactlyTenIsValid(t *testing.T) {
	errs := Validate(Input{Amount: num(100), Timeline: num(5), Proposal: "1234567890"})
	assert.Empty(t, errs)
}

func TestValidate_Table(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want FieldErrors
	}{
		{"all absent", Input{}, FieldErrors{InvalidAmount, InvalidTimeline, EmptyProposal}},
		{"negative amount", Input{Amount: num(-5), Timeline: num(3), Proposal: "a long enough proposal"}, FieldErrors{InvalidAmount}},
		{"nan amount", Input{Amount: num(math.NaN()), Timeline: num(3), Proposal: "a long enough proposal"}, FieldErrors{InvalidAmount}},
		{"zero timeline", Input{Amount: num(10), Timeline: num(0), Proposal: "a long enough proposal"}, FieldErrors{InvalidTimeline}},
		{"timeline beyond int range", Input{Amount: num(10), Timeline: num(1e19), Proposal: "a long enough proposal"}, FieldErrors{InvalidTimeline}},
		{"timeline at upper bound", Input{Amount: num(10), Timeline: num(math.MaxInt32), Proposal: "a long enough proposal"}, nil},
		{"fractional timeline", Input{Amount: num(10), Timeline: num(2.5), Proposal: "a long enough proposal"}, FieldErrors{InvalidTimeline}},
		{"blank proposal", Input{Amount: num(10), Timeline: num(3), Proposal: "    \n\t"}, FieldErrors{EmptyProposal}},
		{"padding does not count", Input{Amount: num(10), Timeline: num(3), Proposal: "   123456789   "}, FieldErrors{ProposalTooShort}},
		{"padded but long enough", Input{Amount: num(10), Timeline: num(3), Proposal: "  1234567890  "}, nil},
		{"multibyte counted as characters", Input{Amount: num(10), Timeline: num(3), Proposal: "éééééééééé"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.in)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInput(t *testing.T) {
	in := ParseInput(" 1500 ", "abc", "proposal")
	if assert.NotNil(t, in.Amount) {
		assert.Equal(t, 1500.0, *in.Amount)
	}
	assert.Nil(t, in.Timeline)

	huge := ParseInput("100", "1e19", "a long enough proposal")
	assert.Equal(t, FieldErrors{InvalidTimeline}, Validate(huge))

	errs := Validate(ParseInput("", "x", ""))
	assert.Equal(t, FieldErrors{InvalidAmount, InvalidTimeline, EmptyProposal}, errs)
}

func TestFieldErrors_HasAndError(t *testing.T) {
	errs := FieldErrors{InvalidAmount, ProposalTooShort}
	assert.True(t, errs.Has(ProposalTooShort))
	assert.False(t, errs.Has(EmptyProposal))
	assert.Equal(t, "invalid bid: InvalidAmount, ProposalTooShort", errs.Error())

	verr := &ValidationError{Errors: errs}
	assert.Equal(t, errs.Error(), verr.Error())
}

func TestBidRequest_Input(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{"number", `12.5`, num(12.5)},
		{"numeric string", `"300"`, num(300)},
		{"text", `"lots"`, nil},
		{"null", `null`, nil},
		{"absent", ``, nil},
		{"bool", `true`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := BidRequest{Amount: json.RawMessage(tt.raw)}.Input()
			assert.Equal(t, tt.want, in.Amount)
		})
	}
}
