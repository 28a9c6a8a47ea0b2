package agent

import "regexp"

// guardKind classifies a subtask description's conditional prefix.
type guardKind int

const (
	guardNone guardKind = iota
	guardFailure
	guardSuccess
)

// The grammar is positional: a description starting with "if <phrase>
// failed/cannot/not found/unsuccessful" gates on a dependency failure;
// "if <phrase> succeeded/success" gates on a dependency success.
// "unsuccessful" must be checked before the success words.
var (
	failureGuardRe = regexp.MustCompile(`(?i)^\s*if\b.*\b(failed|cannot|not\s+found|unsuccessful)\b`)
	successGuardRe = regexp.MustCompile(`(?i)^\s*if\b.*\b(succeeded|success)\b`)
)

func parseGuard(description string) guardKind {
	if failureGuardRe.MatchString(description) {
		return guardFailure
	}
	if successGuardRe.MatchString(description) {
		return guardSuccess
	}
	return guardNone
}
