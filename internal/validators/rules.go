// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Rule keys reported in [Errors].
const (
	KeyRequired             = "required"
	KeyNoStartingSpace      = "noStartingSpace"
	KeyAlphabetAndSpaceOnly = "alphabetAndSpaceOnly"
	KeyEmail                = "email"
	KeyInvalidEmail         = "invalidEmail"
	KeyMinLengthStock       = "minlength"
	KeyPattern              = "pattern"
	KeyFirstDigit           = "firstDigit"

	// Password complexity keys.
	KeyNoSpaces    = "noSpaces"
	KeyMinLength   = "minLength"
	KeyUppercase   = "uppercase"
	KeyLowercase   = "lowercase"
	KeyNumber      = "number"
	KeySpecialChar = "specialChar"
)

// PasswordMinLength is the shortest password the complexity rule accepts.
const PasswordMinLength = 6

// PasswordSpecialChars lists the characters that satisfy the specialChar rule.
const PasswordSpecialChars = `!@#$%^&*(),.?":{}|<>`

var (
	stock = validator.New()

	alphaPrefix = regexp.MustCompile(`^[A-Za-z]+`)
	phoneNumber = regexp.MustCompile(`^[7-9]\d{9}$`)
)

func violation(key string) Errors {
	return Errors{key: true}
}

// Required fails on an empty value.
func Required(value string) Errors {
	if value == "" {
		return violation(KeyRequired)
	}
	return nil
}

// NoStartingSpace fails when value starts with whitespace.
func NoStartingSpace(value string) Errors {
	if value == "" {
		return nil
	}
	if len(strings.TrimLeftFunc(value, unicode.IsSpace)) != len(value) {
		return violation(KeyNoStartingSpace)
	}
	return nil
}

// AlphabetAndSpaceOnly fails when value contains anything other than ASCII
// letters and whitespace.
func AlphabetAndSpaceOnly(value string) Errors {
	if value == "" {
		return nil
	}
	for _, r := range value {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			continue
		}
		return violation(KeyAlphabetAndSpaceOnly)
	}
	return nil
}

// Email is the stock syntactic email check.
func Email(value string) Errors {
	if value == "" {
		return nil
	}
	if err := stock.Var(value, "email"); err != nil {
		return violation(KeyEmail)
	}
	return nil
}

// CustomEmail fails when value has a non-empty local part that does not start
// with a letter. A value with no local part ("@x.com") or without "@" is left
// to [Email].
func CustomEmail(value string) Errors {
	at := strings.IndexByte(value, '@')
	if at <= 0 {
		return nil
	}
	if !alphaPrefix.MatchString(value[:at]) {
		return violation(KeyInvalidEmail)
	}
	return nil
}

// MinLength returns a rule failing on values shorter than n characters.
func MinLength(n int) Func {
	return func(value string) Errors {
		if value == "" {
			return nil
		}
		if utf8.RuneCountInString(value) < n {
			return violation(KeyMinLengthStock)
		}
		return nil
	}
}

// Pattern returns a rule failing when value does not match expr in full.
// expr is anchored implicitly.
func Pattern(expr string) Func {
	re := regexp.MustCompile(fmt.Sprintf(`^(?:%s)$`, expr))
	return func(value string) Errors {
		if value == "" {
			return nil
		}
		if !re.MatchString(value) {
			return violation(KeyPattern)
		}
		return nil
	}
}

// PhoneNumber fails unless value is exactly 10 digits starting with 7, 8 or 9.
func PhoneNumber(value string) Errors {
	if value == "" {
		return nil
	}
	if !phoneNumber.MatchString(value) {
		return violation(KeyFirstDigit)
	}
	return nil
}

// PasswordComplexity checks every password rule and reports all failures at
// once.
func PasswordComplexity(value string) Errors {
	if value == "" {
		return nil
	}

	errs := make(Errors)
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		errs[KeyNoSpaces] = true
	}
	if utf8.RuneCountInString(value) < PasswordMinLength {
		errs[KeyMinLength] = true
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		errs[KeyUppercase] = true
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		errs[KeyLowercase] = true
	}
	if !strings.ContainsFunc(value, func(r rune) bool { return r >= '0' && r <= '9' }) {
		errs[KeyNumber] = true
	}
	if !strings.ContainsAny(value, PasswordSpecialChars) {
		errs[KeySpecialChar] = true
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
