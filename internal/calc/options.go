package calc

// Default configuration values.
const (
	DefaultErrorText    = "Error"
	DefaultHistoryLimit = 50
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithErrorText sets the text shown while the engine is in the error phase.
func WithErrorText(text string) Option {
	return func(e *Engine) {
		if text != "" {
			e.errorText = text
		}
	}
}

// WithMaxDigits caps the number of digits accepted into the input buffer.
// Zero disables the cap.
func WithMaxDigits(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxDigits = n
		}
	}
}

// WithHistoryLimit sets how many completed evaluations the tape keeps.
// Zero disables the tape.
func WithHistoryLimit(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.historyLimit = n
		}
	}
}

// WithObserver registers a function called after every applied event.
func WithObserver(fn func(Step)) Option {
	return func(e *Engine) {
		if fn != nil {
			e.observers = append(e.observers, fn)
		}
	}
}
