package command_safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDangerous_Rm(t *testing.T) {
	assert.True(t, CommandMightBeDangerous([]string{"rm", "-rf", "/tmp/x"}))
	assert.True(t, CommandMightBeDangerous([]string{"rm", "-f", "file"}))
	assert.False(t, CommandMightBeDangerous([]string{"rm", "file"}))
	assert.False(t, CommandMightBeDangerous([]string{"rm"}))
}

func TestDangerous_SudoUnwraps(t *testing.T) {
	assert.True(t, CommandMightBeDangerous([]string{"sudo", "rm", "-rf", "/"}))
	assert.True(t, CommandMightBeDangerous([]string{"sudo", "git", "reset", "--hard"}))
	assert.False(t, CommandMightBeDangerous([]string{"sudo", "ls"}))
	assert.False(t, CommandMightBeDangerous([]string{"sudo"}))
}

func TestDangerous_GitResetAndRm(t *testing.T) {
	assert.True(t, CommandMightBeDangerous([]string{"git", "reset", "--hard"}))
	assert.True(t, CommandMightBeDangerous([]string{"git", "reset"}))
	assert.True(t, CommandMightBeDangerous([]string{"git", "rm", "file"}))
	// Global options are skipped when locating the subcommand.
	assert.True(t, CommandMightBeDangerous([]string{"git", "-C", "/repo", "reset", "--hard"}))
	// A branch named "reset" is not the reset subcommand.
	assert.False(t, CommandMightBeDangerous([]string{"git", "checkout", "reset"}))
}

func TestDangerous_GitBranchDelete(t *testing.T) {
	assert.True(t, CommandMightBeDangerous([]string{"git", "branch", "-d", "old"}))
	assert.True(t, CommandMightBeDangerous([]string{"git", "branch", "-D", "old"}))
	assert.True(t, CommandMightBeDangerous([]string{"git", "branch", "--delete", "old"}))
	assert.True(t, CommandMightBeDangerous([]string{"git", "branch", "-vd", "old"}))
	assert.False(t, CommandMightBeDangerous([]string{"git", "branch", "new"}))
	assert.False(t, CommandMightBeDangerous([]string{"git", "branch", "--list"}))
}

func TestDangerous_GitPush(t *testing.T) {
	assert.True(t, CommandMightBeDangerous([]string{"git", "push", "--force"}))
	assert.True(t, CommandMightBeDangerous([]string{"git", "push", "-f"}))
	assert.True(t, CommandMightBeDangerous([]string{"git", "push", "--force-with-lease"}))
	assert.True(t, CommandMightBeDangerous([]string{"git", "push", "--delete", "origin", "branch"}))
	assert.True(t, CommandMightBeDangerous([]string{"git", "push", "origin", "+main"}))
	assert.True(t, CommandMightBeDangerous([]string{"git", "push", "origin", ":gone"}))
	assert.False(t, CommandMightBeDangerous([]string{"git", "push"}))
	assert.False(t, CommandMightBeDangerous([]string{"git", "push", "origin", "main"}))
}

func TestDangerous_GitClean(t *testing.T) {
	assert.True(t, CommandMightBeDangerous([]string{"git", "clean", "-f"}))
	assert.True(t, CommandMightBeDangerous([]string{"git", "clean", "-fd"}))
	assert.True(t, CommandMightBeDangerous([]string{"git", "clean", "--force"}))
	assert.False(t, CommandMightBeDangerous([]string{"git", "clean", "-n"}))
}

func TestDangerous_InsideShellScript(t *testing.T) {
	assert.True(t, CommandMightBeDangerous([]string{"bash", "-lc", "ls && rm -rf /tmp/x"}))
	assert.False(t, CommandMightBeDangerous([]string{"bash", "-lc", "ls && pwd"}))
}

func TestDangerous_PlainCommandsAreNot(t *testing.T) {
	assert.False(t, CommandMightBeDangerous([]string{"ls", "-la"}))
	assert.False(t, CommandMightBeDangerous([]string{"echo", "rm", "-rf"}))
	assert.False(t, CommandMightBeDangerous(nil))
}
