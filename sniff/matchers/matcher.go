package matchers

// Matcher reports whether a password shows one kind of weakness.
// Implementations hold no mutable state and are safe for concurrent use.
type Matcher interface {
	Match(password string) bool
}
