package words

// WordError is a custom error type for word-processing errors
type WordError string

// Error implements the error interface
func (e WordError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    WordError = "config cannot be nil"
	ErrNilValidator WordError = "validator cannot be nil"
	ErrNilInput     WordError = "input cannot be nil"
	ErrNilState     WordError = "game state cannot be nil"
)
