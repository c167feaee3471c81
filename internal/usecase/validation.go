package usecase

import (
	"fmt"
	"regexp"
	"strings"

	domainErrors "orderdesk/internal/domain/errors"
	"orderdesk/internal/domain/model"
)

const (
	productNameMinLen = 3
	productNameMaxLen = 50
	descriptionMinLen = 6
	descriptionMaxLen = 200
	passwordMinLen    = 6
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// ValidEmail reports whether the address is plausibly formed.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone reports whether the value is a 10-digit phone number.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func validateProductName(name string) error {
	if n := len(strings.TrimSpace(name)); n < productNameMinLen || n > productNameMaxLen {
		return fmt.Errorf("%w: product name must be %d-%d characters", domainErrors.ErrValidation, productNameMinLen, productNameMaxLen)
	}
	return nil
}

func validateDescription(description string) error {
	if n := len(strings.TrimSpace(description)); n < descriptionMinLen || n > descriptionMaxLen {
		return fmt.Errorf("%w: description must be %d-%d characters", domainErrors.ErrValidation, descriptionMinLen, descriptionMaxLen)
	}
	return nil
}

func validateQuantity(quantity int64) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", domainErrors.ErrValidation)
	}
	return nil
}

func validatePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", domainErrors.ErrValidation)
	}
	return nil
}

// ValidateDraft checks all fields of a new order.
func ValidateDraft(draft model.OrderDraft) error {
	if err := validateProductName(draft.Name); err != nil {
		return err
	}
	if err := validateDescription(draft.Description); err != nil {
		return err
	}
	if err := validateQuantity(draft.Quantity); err != nil {
		return err
	}
	return validatePrice(draft.Price)
}

// ValidateUpdate checks the fields present in a partial update.
func ValidateUpdate(update model.OrderUpdate) error {
	if update.Name != nil {
		if err := validateProductName(*update.Name); err != nil {
			return err
		}
	}
	if update.Description != nil {
		if err := validateDescription(*update.Description); err != nil {
			return err
		}
	}
	if update.Quantity != nil {
		if err := validateQuantity(*update.Quantity); err != nil {
			return err
		}
	}
	if update.Price != nil {
		if err := validatePrice(*update.Price); err != nil {
			return err
		}
	}
	return nil
}
