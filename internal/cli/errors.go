package cli

import "errors"

var (
	errFlagRequiresArg = errors.New("flag requires an argument")
	errUnknownFlag     = errors.New("unknown flag")
	errUnknownCommand  = errors.New("unknown command")
	errIDRequired      = errors.New("person ID is required")
	errInputEnded      = errors.New("input ended before all fields were entered")
)
