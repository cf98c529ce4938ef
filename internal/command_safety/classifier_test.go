package command_safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunacode/tunacode-go/internal/execpolicy"
)

func newAssessor(t *testing.T) *Assessor {
	t.Helper()
	policy, err := execpolicy.DefaultPolicy()
	require.NoError(t, err)
	return NewAssessor(policy)
}

func TestAssess_PolicyMatchWithReadableArgsAutoApproves(t *testing.T) {
	a := newAssessor(t)

	v := a.Assess([]string{"cat", "README.md", "go.mod"})
	assert.Equal(t, AssessmentAutoApprove, v.Assessment)
}

func TestAssess_WriteableArgRequiresApproval(t *testing.T) {
	a := newAssessor(t)

	// cp matches the policy, but the destination is a writeable file.
	v := a.Assess([]string{"cp", "a.txt", "b.txt"})
	assert.Equal(t, AssessmentAskUser, v.Assessment)
	assert.Contains(t, v.Reason, "writeable-file")
}

func TestAssess_AllowListOverride(t *testing.T) {
	policy, err := execpolicy.DefaultPolicy()
	require.NoError(t, err)

	allow := DefaultAutoApproveTypes()
	allow[execpolicy.ArgTypeWriteableFile] = true
	a := NewAssessorWithAllowList(policy, allow)

	v := a.Assess([]string{"cp", "a.txt", "b.txt"})
	assert.Equal(t, AssessmentAutoApprove, v.Assessment)
}

func TestAssess_UnknownProgramFallsBackToHeuristic(t *testing.T) {
	a := newAssessor(t)

	// Not in the policy table, but on the known-safe list.
	v := a.Assess([]string{"uname", "-a"})
	assert.Equal(t, AssessmentAutoApprove, v.Assessment)

	// Neither in the table nor known safe.
	v = a.Assess([]string{"curl", "https://example.com"})
	assert.Equal(t, AssessmentAskUser, v.Assessment)
	assert.Contains(t, v.Reason, "curl")
}

func TestAssess_MalformedInvocationAsksUser(t *testing.T) {
	a := newAssessor(t)

	// cp with one argument leaves the source vararg empty.
	v := a.Assess([]string{"cp", "only"})
	assert.Equal(t, AssessmentAskUser, v.Assessment)
	assert.NotEmpty(t, v.Reason)
}

func TestAssess_ShellScriptDecomposition(t *testing.T) {
	a := newAssessor(t)

	v := a.Assess([]string{"bash", "-lc", "cat go.mod && pwd"})
	assert.Equal(t, AssessmentAutoApprove, v.Assessment)

	// One sub-command failing drags the whole script to approval.
	v = a.Assess([]string{"bash", "-lc", "cat go.mod && cp a b"})
	assert.Equal(t, AssessmentAskUser, v.Assessment)
}

func TestAssess_UnparseableScriptTreatedAsOpaque(t *testing.T) {
	a := newAssessor(t)

	v := a.Assess([]string{"bash", "-lc", "cat $(find / -name secret)"})
	assert.Equal(t, AssessmentAskUser, v.Assessment)
}

func TestAssess_EscapedWordsNeverAutoApproved(t *testing.T) {
	a := newAssessor(t)

	// bash strips the backslash and runs `find . -delete`; the escaped form
	// must not slip past the known-safe heuristic.
	v := a.Assess([]string{"bash", "-lc", `find . \-delete`})
	assert.Equal(t, AssessmentAskUser, v.Assessment)

	v = a.Assess([]string{"bash", "-lc", `base64 \-o out.bin data`})
	assert.Equal(t, AssessmentAskUser, v.Assessment)
}

func TestAssess_DangerousCommandNeverAutoApproved(t *testing.T) {
	a := newAssessor(t)

	v := a.Assess([]string{"rm", "-rf", "/"})
	assert.Equal(t, AssessmentAskUser, v.Assessment)
	assert.Contains(t, v.Reason, "destructive")

	v = a.Assess([]string{"git", "push", "--force"})
	assert.Equal(t, AssessmentAskUser, v.Assessment)
}

func TestAssess_EmptyCommandRejected(t *testing.T) {
	a := newAssessor(t)

	v := a.Assess(nil)
	assert.Equal(t, AssessmentReject, v.Assessment)
}

func TestAssess_Deterministic(t *testing.T) {
	a := newAssessor(t)

	cmd := []string{"bash", "-lc", "cat go.mod | wc -l"}
	assert.Equal(t, a.Assess(cmd), a.Assess(cmd))
}
