// Package errors provides sentinel errors and custom error types for the branchkit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain failure taxonomy
var (
	// ErrNotARepository indicates the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrUnknownBranch indicates that a branch does not exist
	ErrUnknownBranch = errors.New("unknown branch")

	// ErrNoCanonicalBranch indicates that no canonical working branch exists
	ErrNoCanonicalBranch = errors.New("no canonical branch")

	// ErrProtectedBranch indicates a push to a protected branch was refused
	ErrProtectedBranch = errors.New("protected branch")

	// ErrNoDifferences indicates a branch has no file differences against its baseline
	ErrNoDifferences = errors.New("no differences")

	// ErrUnrecognizedOption indicates menu input that matches no option
	ErrUnrecognizedOption = errors.New("unrecognized option")

	// ErrNoOptions indicates a menu was rendered with no options beyond the prompt
	ErrNoOptions = errors.New("no options")

	// ErrInvalidLength indicates a non-integer truncation length
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidArguments indicates a usage error in the argument-parsing layer
	ErrInvalidArguments = errors.New("invalid arguments")
)

// Exit codes for domain failures. Usage errors exit through cobra with its
// own non-zero status, distinct from these.
const (
	ExitGenericFailure    = 1
	ExitUsage             = 2
	ExitNotARepository    = 3
	ExitUnknownBranch     = 4
	ExitNoCanonicalBranch = 5
	ExitProtectedBranch   = 6
	ExitNoDifferences     = 7
	ExitUnrecognized      = 8
	ExitNoOptions         = 9
	ExitInvalidLength     = 10
)

// ExitCode maps an error to its process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrNotARepository):
		return ExitNotARepository
	case errors.Is(err, ErrUnknownBranch):
		return ExitUnknownBranch
	case errors.Is(err, ErrNoCanonicalBranch):
		return ExitNoCanonicalBranch
	case errors.Is(err, ErrProtectedBranch):
		return ExitProtectedBranch
	case errors.Is(err, ErrNoDifferences):
		return ExitNoDifferences
	case errors.Is(err, ErrUnrecognizedOption):
		return ExitUnrecognized
	case errors.Is(err, ErrNoOptions):
		return ExitNoOptions
	case errors.Is(err, ErrInvalidLength):
		return ExitInvalidLength
	case errors.Is(err, ErrInvalidArguments):
		return ExitUsage
	default:
		return ExitGenericFailure
	}
}

// UnknownBranchError represents an error when a branch cannot be resolved
type UnknownBranchError struct {
	BranchName string
}

func (e *UnknownBranchError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrUnknownBranch
func (e *UnknownBranchError) Is(target error) bool {
	return target == ErrUnknownBranch
}

// NewUnknownBranchError creates a new UnknownBranchError
func NewUnknownBranchError(branchName string) *UnknownBranchError {
	return &UnknownBranchError{BranchName: branchName}
}

// ProtectedBranchError represents a refused push to a protected branch
type ProtectedBranchError struct {
	BranchName string
}

func (e *ProtectedBranchError) Error() string {
	return fmt.Sprintf("pushing to %s is not allowed", e.BranchName)
}

// Is returns true if the target error is ErrProtectedBranch
func (e *ProtectedBranchError) Is(target error) bool {
	return target == ErrProtectedBranch
}

// NewProtectedBranchError creates a new ProtectedBranchError
func NewProtectedBranchError(branchName string) *ProtectedBranchError {
	return &ProtectedBranchError{BranchName: branchName}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
