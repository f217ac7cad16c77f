package assets

import "fmt"

// maxAssetNameLen bounds theme file names.
const maxAssetNameLen = 64

// ValidateAssetName checks that name can be used as a theme file stem.
// Names are lowercase ASCII letters, digits, '_' and '-', so they can never
// carry a separator, a dot or a traversal sequence.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLen {
		return fmt.Errorf("%w: name longer than %d characters", ErrInvalidAssetName, maxAssetNameLen)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
