package usecase

const maxUsernameLength = 64

// ValidateUsername checks that a username consists of letters, digits,
// dots, underscores, or hyphens and fits the length limit.
func ValidateUsername(username string) bool {
	if username == "" || len(username) > maxUsernameLength {
		return false
	}

	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-':
		default:
			return false
		}
	}

	return true
}
