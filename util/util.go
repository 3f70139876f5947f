package util

func Contains[T comparable](values []T, wantedValue T) bool {
	for _, value := range values {
		if value == wantedValue {
			return true
		}
	}
	return false
}
