package infra

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewErrorStack(t *testing.T) {
	err := NewErrorStack("something broke")
	require.Error(t, err)
	require.Equal(t, "something broke", err.Error())

	detailed := fmt.Sprintf("%+v", err)
	require.Contains(t, detailed, "something broke")
	require.Contains(t, detailed, "err_stack_test.go")
}

func TestWrapErrorStack(t *testing.T) {
	require.NoError(t, WrapErrorStack(nil))

	base := errors.New("root cause")
	wrapped := WrapErrorStack(base)
	require.Error(t, wrapped)
	require.ErrorIs(t, wrapped, base)
	require.Equal(t, "root cause", wrapped.Error())
}

func TestWrapErrorStackWithMessage(t *testing.T) {
	base := errors.New("root cause")
	wrapped := WrapErrorStackWithMessage(base, "loading config")
	require.ErrorIs(t, wrapped, base)
	require.Contains(t, wrapped.Error(), "loading config")
	require.Contains(t, wrapped.Error(), "root cause")

	// A message alone still produces an error.
	msgOnly := WrapErrorStackWithMessage(nil, "standalone")
	require.Error(t, msgOnly)
	require.Equal(t, "standalone", msgOnly.Error())

	require.NoError(t, WrapErrorStackWithMessage(nil, ""))
}

func TestErrorStackFormatVerbs(t *testing.T) {
	err := NewErrorStack("verb check")

	require.Equal(t, "verb check", fmt.Sprintf("%s", err))
	require.Equal(t, "verb check", fmt.Sprintf("%v", err))
	require.Equal(t, `"verb check"`, fmt.Sprintf("%q", err))

	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	require.Greater(t, len(lines), 1)
}

func TestOrderedKeyComparator(t *testing.T) {
	icmp := OrderedKeyComparator[int64]()
	require.Negative(t, icmp(1, 2))
	require.Positive(t, icmp(2, 1))
	require.Zero(t, icmp(3, 3))

	scmp := OrderedKeyComparator[string]()
	require.Negative(t, scmp("abc", "abd"))
	require.Positive(t, scmp("b", "a"))
	require.Zero(t, scmp("x", "x"))

	fcmp := OrderedKeyComparator[float64]()
	require.Negative(t, fcmp(1.5, 2.5))
	require.Zero(t, fcmp(2.5, 2.5))
}
