package category

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"catalog/internal/pkg/errs"
)

const (
	NameMinLength        = 3
	NameMaxLength        = 255
	DescriptionMaxLength = 10000
)

const (
	nameLabel        = "Name"
	descriptionLabel = "Description"
)

// Messages reported by ValidateFields, in evaluation order.
var (
	MsgNameIsEmpty          = fmt.Sprintf("%s should not be empty or null", nameLabel)
	MsgNameIsTooShort       = fmt.Sprintf("%s should be at least %d characters long", nameLabel, NameMinLength)
	MsgNameIsTooLong        = fmt.Sprintf("%s should be less or equal to %d characters long", nameLabel, NameMaxLength)
	MsgDescriptionIsNull    = fmt.Sprintf("%s should not be null", descriptionLabel)
	MsgDescriptionIsTooLong = fmt.Sprintf(
		"%s should be less or equal to %d characters long", descriptionLabel, DescriptionMaxLength)
)

// ValidateFields checks a name/description pair against the Category
// invariants and returns the first violation as an *errs.EntityValidationError.
// A nil description stands for a missing one. Lengths are counted in runes.
func ValidateFields(name string, description *string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewEntityValidationError(MsgNameIsEmpty)
	}

	nameLength := utf8.RuneCountInString(name)
	if nameLength < NameMinLength {
		return errs.NewEntityValidationError(MsgNameIsTooShort)
	}
	if nameLength > NameMaxLength {
		return errs.NewEntityValidationError(MsgNameIsTooLong)
	}

	if description == nil {
		return errs.NewEntityValidationError(MsgDescriptionIsNull)
	}
	if utf8.RuneCountInString(*description) > DescriptionMaxLength {
		return errs.NewEntityValidationError(MsgDescriptionIsTooLong)
	}

	return nil
}
