// Package email validates addresses, infers missing name parts from local
// parts, and detects per-company local-part naming conventions.
package email

import (
	"regexp"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sells-group/listclean-cli/internal/model"
)

// formatRe is a permissive localpart@domain.tld check; deliverability is
// out of scope.
var formatRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// defaultDisposableDomains are throwaway-mail providers whose addresses are
// flagged rather than merged into pattern analysis.
var defaultDisposableDomains = []string{
	"mailinator.com", "guerrillamail.com", "10minutemail.com",
	"tempmail.com", "temp-mail.org", "throwaway.email", "yopmail.com",
	"trashmail.com", "getnada.com", "maildrop.cc", "sharklasers.com",
	"dispostable.com", "fakeinbox.com",
}

// Validator checks email addresses against the format regex, a disposable
// domain denylist, and an optional stricter secondary validator.
type Validator struct {
	disposable map[string]bool
	strict     *playground.Validate
}

// NewValidator builds a Validator with the default disposable-domain set.
// When strict is true a secondary RFC validator is consulted; it can only
// downgrade addresses the regex accepted.
func NewValidator(strict bool) *Validator {
	return NewValidatorWith(defaultDisposableDomains, strict)
}

// NewValidatorWith builds a Validator with a custom disposable-domain set.
func NewValidatorWith(disposableDomains []string, strict bool) *Validator {
	set := make(map[string]bool, len(disposableDomains))
	for _, d := range disposableDomains {
		set[strings.ToLower(d)] = true
	}
	v := &Validator{disposable: set}
	if strict {
		v.strict = playground.New()
	}
	return v
}

// Validate classifies an address as missing, badly formatted, disposable,
// or valid.
func (v *Validator) Validate(addr string) model.ValidationResult {
	addr = strings.TrimSpace(addr)
	if model.IsAbsent(addr) {
		return model.ValidationResult{Reason: model.ReasonMissing}
	}
	if !formatRe.MatchString(addr) {
		return model.ValidationResult{Reason: model.ReasonInvalidFormat}
	}
	if v.disposable[strings.ToLower(Domain(addr))] {
		return model.ValidationResult{Reason: model.ReasonDisposable}
	}

	if v.strict != nil {
		if err := v.strict.Var(addr, "email"); err != nil {
			if _, internal := err.(*playground.InvalidValidationError); internal {
				// Validator-internal failure: fail open to the regex result.
				zap.L().Debug("email: strict validator error", zap.Error(err))
			} else {
				return model.ValidationResult{Reason: model.ReasonInvalidFormat}
			}
		}
	}

	return model.ValidationResult{IsValid: true, Reason: model.ReasonValid}
}

// LocalPart returns the lowercased portion before the @, or "" when the
// address has no @.
func LocalPart(addr string) string {
	at := strings.Index(addr, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(addr[:at])
}

// Domain returns the portion after the last @, or "" when absent.
func Domain(addr string) string {
	at := strings.LastIndex(addr, "@")
	if at < 0 || at == len(addr)-1 {
		return ""
	}
	return addr[at+1:]
}
