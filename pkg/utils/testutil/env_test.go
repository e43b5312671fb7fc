package testutil_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relnote/pkg/utils/testutil"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Run("set variable is returned", func(t *testing.T) {
		t.Setenv("RELNOTE_TEST_TOKEN", "ghp_dummy")
		gt.V(t, testutil.GetEnvOrSkip(t, "RELNOTE_TEST_TOKEN")).Equal("ghp_dummy")
	})

	t.Run("empty variable skips the caller", func(t *testing.T) {
		t.Setenv("RELNOTE_TEST_TOKEN", "")

		var inner *testing.T
		reached := false
		t.Run("needs token", func(t *testing.T) {
			inner = t
			testutil.GetEnvOrSkip(t, "RELNOTE_TEST_TOKEN")
			reached = true
		})

		gt.True(t, inner.Skipped())
		gt.False(t, reached)
	})
}

func TestGetEnvInt64OrSkip(t *testing.T) {
	t.Run("numeric id is parsed", func(t *testing.T) {
		t.Setenv("RELNOTE_TEST_APP_ID", "123456")
		gt.V(t, testutil.GetEnvInt64OrSkip(t, "RELNOTE_TEST_APP_ID")).Equal(int64(123456))
	})

	t.Run("unset id skips the caller", func(t *testing.T) {
		t.Setenv("RELNOTE_TEST_APP_ID", "")

		var inner *testing.T
		t.Run("needs app id", func(t *testing.T) {
			inner = t
			testutil.GetEnvInt64OrSkip(t, "RELNOTE_TEST_APP_ID")
		})
		gt.True(t, inner.Skipped())
	})
}
