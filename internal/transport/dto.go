// Package transport holds the request and response shapes of the HTTP API
// along with their validation. Validation is explicit: each request type has
// a Validate method returning the list of messages, empty when the input is
// acceptable.
package transport

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r RegisterRequest) Validate() []string {
	var msgs []string
	if strings.TrimSpace(r.Email) == "" {
		msgs = append(msgs, "email must not be empty")
	} else if !emailRe.MatchString(r.Email) {
		msgs = append(msgs, "email must be a valid email address")
	}

	switch {
	case r.Password == "":
		msgs = append(msgs, "password must not be empty")
	case len(r.Password) < 8:
		msgs = append(msgs, "password must be at least 8 characters long")
	case !passwordStrongEnough(r.Password):
		msgs = append(msgs, "password must contain an uppercase letter, a lowercase letter and a digit or special character")
	}

	if r.ConfirmPassword != r.Password {
		msgs = append(msgs, "passwords do not match")
	}
	return msgs
}

func passwordStrongEnough(pw string) bool {
	var upper, lower, digitOrSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r):
			digitOrSpecial = true
		}
	}
	return upper && lower && digitOrSpecial
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() []string {
	var msgs []string
	if strings.TrimSpace(r.Email) == "" {
		msgs = append(msgs, "email must not be empty")
	}
	if r.Password == "" {
		msgs = append(msgs, "password must not be empty")
	}
	return msgs
}

type RegisterResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Quantity and Price are pointers so that absent fields are distinguishable
// from zero values.
type CreateProductRequest struct {
	Name     string   `json:"name"`
	SKU      string   `json:"sku"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
}

func (r CreateProductRequest) Validate() []string {
	var msgs []string
	if strings.TrimSpace(r.Name) == "" {
		msgs = append(msgs, "name must not be empty")
	}
	if strings.TrimSpace(r.SKU) == "" {
		msgs = append(msgs, "sku must not be empty")
	}

	switch {
	case r.Quantity == nil:
		msgs = append(msgs, "quantity must not be empty")
	case *r.Quantity < 0:
		msgs = append(msgs, "quantity must not be negative")
	}

	switch {
	case r.Price == nil:
		msgs = append(msgs, "price must not be empty")
	case *r.Price <= 0:
		msgs = append(msgs, "price must be a positive number")
	case !atMostTwoDecimals(*r.Price):
		msgs = append(msgs, "price must have at most 2 decimal places")
	}
	return msgs
}

func atMostTwoDecimals(v float64) bool {
	scaled := v * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

// SellerResponse is the only shape admin seller listings expose; the password
// hash and timestamps never leave the directory.
type SellerResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
