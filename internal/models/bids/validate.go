package bids

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

type FieldError string

const (
	InvalidAmount    FieldError = "InvalidAmount"
	InvalidTimeline  FieldError = "InvalidTimeline"
	EmptyProposal    FieldError = "EmptyProposal"
	ProposalTooShort FieldError = "ProposalTooShort"
)

type FieldErrors []FieldError

func (fe FieldErrors) Has(code FieldError) bool {
	for _, e := range fe {
		if e == code {
			return true
		}
	}
	return false
}

func (fe FieldErrors) Codes() []string {
	codes := make([]string, 0, len(fe))
	for _, e := range fe {
		codes = append(codes, string(e))
	}
	return codes
}

func (fe FieldErrors) Error() string {
	return "invalid bid: " + strings.Join(fe.Codes(), ", ")
}

type ValidationError struct {
	Errors FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Errors.Error()
}

// Input holds the raw bid form. A nil number means the field was left empty.
type Input struct {
	Amount   *float64 `validate:"required,gt=0"`
	Timeline *float64 `validate:"required,gt=0,lte=2147483647,whole"`
	Proposal string   `validate:"nonblank,trimmedmin=10"`
}

func (r BidRequest) Input() Input {
	return Input{
		Amount:   rawNumber(r.Amount),
		Timeline: rawNumber(r.Timeline),
		Proposal: r.Proposal,
	}
}

// ParseInput reads form text. Empty or non-numeric numbers become nil.
func ParseInput(amount, timeline, proposal string) Input {
	return Input{
		Amount:   parseNumber(amount),
		Timeline: parseNumber(timeline),
		Proposal: proposal,
	}
}

// rawNumber accepts a JSON number or a JSON string holding one.
func rawNumber(raw json.RawMessage) *float64 {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseNumber(s)
	}
	return parseNumber(string(raw))
}

func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("trimmedmin", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
	})
	_ = v.RegisterValidation("whole", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return f == math.Trunc(f)
	}, false)
	return v
}

// Validate reports every violated rule, in field order, or nil when the input is acceptable.
func Validate(in Input) FieldErrors {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	// Input is always a struct, so err is always ValidationErrors.
	var verrs validator.ValidationErrors
	errors.As(err, &verrs)

	result := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.StructField() {
		case "Amount":
			result = append(result, InvalidAmount)
		case "Timeline":
			result = append(result, InvalidTimeline)
		case "Proposal":
			if fe.Tag() == "nonblank" {
				result = append(result, EmptyProposal)
			} else {
				result = append(result, ProposalTooShort)
			}
		}
	}
	return result
}
