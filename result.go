package progrun

import "fmt"

// ProgramResult describes the outcome of one program invocation. It is
// returned by value and never modified after Run builds it.
type ProgramResult struct {
	ReturnCode   int
	Stdout       string
	Stderr       string
	ErrorMessage string // set only when ReturnCode != 0
}

// Success reports whether the program exited with status 0.
func (r ProgramResult) Success() bool {
	return r.ReturnCode == 0
}

// HasError reports whether ErrorMessage is populated.
func (r ProgramResult) HasError() bool {
	return r.ErrorMessage != ""
}

func newProgramResult(args []string, code int, stdout, stderr string) ProgramResult {
	res := ProgramResult{
		ReturnCode: code,
		Stdout:     stdout,
		Stderr:     stderr,
	}
	if code != 0 {
		res.ErrorMessage = fmt.Sprintf("non-zero exit code %d from: %q, stdout: '%s', stderr: '%s'",
			code, args, stdout, stderr)
	}
	return res
}
