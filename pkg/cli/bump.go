package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/model"
	"github.com/m-mizutani/relnote/pkg/utils/logging"
	"github.com/m-mizutani/relnote/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func bumpCommand() *cli.Command {
	var (
		file    string
		version string
		dryRun  bool
		strict  bool
	)

	return &cli.Command{
		Name:  "bump",
		Usage: "Rewrite __version__ of a local file, the same way update-version does on GitHub",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"F"},
				Usage:       "Path to the file declaring __version__",
				Value:       "__init__.py",
				Destination: &file,
			},
			&cli.StringFlag{
				Name:        "version",
				Aliases:     []string{"V"},
				Usage:       "New version, e.g. 1.2.3",
				Required:    true,
				Destination: &version,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "Require a semantic version",
				Destination: &strict,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Print the patched file instead of writing it",
				Destination: &dryRun,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var out io.Writer
			if dryRun {
				out = os.Stdout
			}
			return BumpVersionFile(ctx, file, version, strict, out)
		},
	}
}

// BumpVersionFile patches the version declaration in path. When out is not nil
// the result is written to out and path is left untouched.
func BumpVersionFile(ctx context.Context, path, version string, strict bool, out io.Writer) error {
	validate := model.ValidateVersion
	if strict {
		validate = model.ValidateSemanticVersion
	}
	if err := validate(version); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return goerr.Wrap(err, "failed to stat version file", goerr.V("path", path))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read version file", goerr.V("path", path))
	}

	patched := model.PatchVersionDeclaration(string(raw), version)
	if out != nil {
		if _, err := fmt.Fprint(out, patched); err != nil {
			return goerr.Wrap(err, "failed to write patched file")
		}
		return nil
	}

	if err := replaceFile(ctx, path, []byte(patched), info.Mode().Perm()); err != nil {
		return err
	}

	logging.From(ctx).Info("Version updated",
		slog.String("path", path),
		slog.String("version", version),
		slog.Any("previous", model.FindVersionDeclarations(string(raw))),
	)
	return nil
}

// replaceFile writes data next to path and renames it over path.
func replaceFile(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("path", path))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		safe.Close(ctx, tmp)
		safe.Remove(ctx, tmpName)
		return goerr.Wrap(err, "failed to write temp file", goerr.V("path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		safe.Remove(ctx, tmpName)
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", tmpName))
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		safe.Remove(ctx, tmpName)
		return goerr.Wrap(err, "failed to set file mode", goerr.V("path", tmpName))
	}
	if err := os.Rename(tmpName, path); err != nil {
		safe.Remove(ctx, tmpName)
		return goerr.Wrap(err, "failed to replace version file", goerr.V("path", path))
	}
	return nil
}
