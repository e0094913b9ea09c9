package sdkfile

import "errors"

var (
	// ErrStructural means an existing SDK file does not end with a closing brace.
	ErrStructural = errors.New("sdk file is corrupted or improperly formatted")
	// ErrUnclosedBlock means a declaration was found but its braces never balance.
	ErrUnclosedBlock = errors.New("struct declaration is never closed")
	// ErrReplaceDeclined means the caller chose to keep the existing declaration.
	ErrReplaceDeclined = errors.New("replacement declined")
)
