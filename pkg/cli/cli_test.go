package cli_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relnote/pkg/cli"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
)

func TestRunRejectsUnknownLogLevel(t *testing.T) {
	path := writeVersionFile(t, "import os\n")

	err := cli.New(cli.WithVersion("1.2.3")).Run(context.Background(),
		[]string{"relnote", "--log-level", "verbose", "--log-output", "stderr", "bump", "--file", path, "--version", "2.0.0"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	raw := gt.R1(os.ReadFile(path)).NoError(t)
	gt.V(t, string(raw)).Equal("import os\n")
}

func TestRunAcceptsTraceLevel(t *testing.T) {
	path := writeVersionFile(t, "import os\n")
	t.Cleanup(func() {
		gt.NoError(t, logging.Configure("text", "info", "stdout"))
	})

	gt.NoError(t, cli.New().Run(context.Background(),
		[]string{"relnote", "--log-level", "TRACE", "--log-output", "stderr", "bump", "--file", path, "--version", "2.0.0"}))
}
