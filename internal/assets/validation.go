package assets

import (
	"fmt"
	"strings"
)

// MaxAssetNameLength bounds palette and target set names.
const MaxAssetNameLength = 64

// ValidateAssetName reports whether name can address a palette or target set
// file. Names are made of ASCII letters, digits, '-' and '_', so they can never
// carry a separator, an extension or a traversal.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > MaxAssetNameLength:
		return fmt.Errorf("%w: %d characters (max %d)", ErrInvalidAssetName, len(name), MaxAssetNameLength)
	}
	if i := strings.IndexFunc(name, func(r rune) bool { return !isNameRune(r) }); i >= 0 {
		return fmt.Errorf("%w: %q has invalid character %q", ErrInvalidAssetName, name, name[i])
	}
	return nil
}

func isNameRune(r rune) bool {
	return r == '-' || r == '_' ||
		('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
