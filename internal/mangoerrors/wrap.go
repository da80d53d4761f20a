package mangoerrors

// wrapper is satisfied by every typed error here, so errors.Is and errors.As
// reach the phase sentinels.
type wrapper interface {
	error
	Unwrap() error
}
