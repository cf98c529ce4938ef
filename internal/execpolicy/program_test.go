package execpolicy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgramSpec_RejectsTwoVarargs(t *testing.T) {
	_, err := NewProgramSpec("bad", []ArgMatcher{ReadableFiles, WriteableFiles}, []string{"/bin/bad"})
	var specErr *SpecError
	require.ErrorAs(t, err, &specErr)
	assert.Equal(t, "bad", specErr.Program)
	assert.Contains(t, specErr.Error(), "more than one vararg")
}

func TestNewProgramSpec_RejectsEmptyPaths(t *testing.T) {
	_, err := NewProgramSpec("cat", []ArgMatcher{ReadableFiles}, nil)
	var specErr *SpecError
	require.ErrorAs(t, err, &specErr)
	assert.Contains(t, specErr.Error(), "executable path")
}

func TestNewProgramSpec_RejectsRelativePath(t *testing.T) {
	_, err := NewProgramSpec("cat", []ArgMatcher{ReadableFiles}, []string{"bin/cat"})
	var specErr *SpecError
	require.ErrorAs(t, err, &specErr)
	assert.Contains(t, specErr.Error(), "not absolute")
}

func TestNewProgramSpec_RejectsEmptyName(t *testing.T) {
	_, err := NewProgramSpec("", []ArgMatcher{ReadableFiles}, []string{"/bin/x"})
	var specErr *SpecError
	require.ErrorAs(t, err, &specErr)
}

func TestProgramSpec_SplitAroundVararg(t *testing.T) {
	tests := []struct {
		name       string
		patterns   []ArgMatcher
		wantPrefix int
		wantVararg bool
		wantSuffix int
	}{
		{"no vararg", []ArgMatcher{Flag("-n"), UntypedArg}, 2, false, 0},
		{"vararg only", []ArgMatcher{ReadableFiles}, 0, true, 0},
		{"vararg leading", []ArgMatcher{ReadableFiles, WriteableFile}, 0, true, 1},
		{"vararg trailing", []ArgMatcher{Flag("-n"), UntypedArg, ReadableFiles}, 2, true, 0},
		{"vararg in middle", []ArgMatcher{Flag("-v"), ReadableFiles, Literal("to"), WriteableFile}, 1, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := NewProgramSpec("p", tt.patterns, []string{"/bin/p"})
			require.NoError(t, err)

			prefix, vararg, suffix := spec.split()
			assert.Len(t, prefix, tt.wantPrefix)
			assert.Equal(t, tt.wantVararg, vararg != nil)
			assert.Len(t, suffix, tt.wantSuffix)
		})
	}
}

func TestArgMatcher_Cardinality(t *testing.T) {
	assert.Equal(t, CardinalityVararg, ReadableFiles.Cardinality())
	assert.Equal(t, CardinalityVararg, WriteableFiles.Cardinality())
	assert.Equal(t, CardinalityVararg, UntypedArgs.Cardinality())
	assert.Equal(t, CardinalitySingle, ReadableFile.Cardinality())
	assert.Equal(t, CardinalitySingle, WriteableFile.Cardinality())
	assert.Equal(t, CardinalitySingle, UntypedArg.Cardinality())
	assert.Equal(t, CardinalitySingle, Literal("x").Cardinality())
	assert.Equal(t, CardinalitySingle, Flag("-x").Cardinality())
}

func TestArgMatcher_ArgType(t *testing.T) {
	assert.Equal(t, ArgTypeReadableFile, ReadableFile.ArgType())
	assert.Equal(t, ArgTypeReadableFile, ReadableFiles.ArgType())
	assert.Equal(t, ArgTypeWriteableFile, WriteableFile.ArgType())
	assert.Equal(t, ArgTypeWriteableFile, WriteableFiles.ArgType())
	assert.Equal(t, ArgTypeUntyped, UntypedArg.ArgType())
	assert.Equal(t, ArgTypeUntyped, UntypedArgs.ArgType())
	assert.Equal(t, ArgTypeFlag, Flag("-n").ArgType())
	assert.Equal(t, ArgTypeLiteral, Literal("status").ArgType())
}
