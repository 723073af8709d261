// internal/launch/launcher_test.go

package launch

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuul/spackle-ssh/internal/apperr"
)

func TestLaunchMissingExecutable(t *testing.T) {
	_, err := Launch(Plan{Executable: "definitely-not-a-real-binary-4711"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Launch))
	assert.Contains(t, err.Error(), "definitely-not-a-real-binary-4711")
}

func TestLaunchDetaches(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("'true' not available in PATH")
	}

	handle, err := Launch(Plan{Executable: "true", Strategy: GenericEmulator})
	require.NoError(t, err)
	assert.Greater(t, handle.Pid, 0)
}
