package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relnote/pkg/domain/types"
	"golang.org/x/mod/semver"
)

// VersionIdentifier is the assignment target of a Python package version declaration.
const VersionIdentifier = "__version__"

var (
	// ptnDocBlock matches the first triple-quoted documentation block.
	ptnDocBlock = regexp.MustCompile(`(?s)""".*?"""|'''.*?'''`)

	// ptnVersionDeclaration matches `__version__ = '1.2.3'` and `__version__ = "1.2.3"`.
	ptnVersionDeclaration = regexp.MustCompile(`__version__\s*=\s*['"]([^'"]+)['"]`)

	ptnBlankLineRun = regexp.MustCompile(`\n{3,}`)
)

// PatchVersionDeclaration rewrites text so that it holds exactly one version
// declaration with newVersion. The declaration is placed right after the leading
// documentation block, or at the top when there is none. Runs of three or more
// newlines are collapsed to two across the whole text.
//
// newVersion must not contain a quote character. ValidateVersion rejects those.
func PatchVersionDeclaration(text, newVersion string) string {
	cleaned := ptnVersionDeclaration.ReplaceAllLiteralString(text, "")
	declaration := VersionIdentifier + " = '" + newVersion + "'"

	var patched string
	if loc := ptnDocBlock.FindStringIndex(cleaned); loc != nil {
		pos := loc[1]
		for pos < len(cleaned) && isLayoutSpace(cleaned[pos]) {
			pos++
		}

		tail := "\n"
		if pos < len(cleaned) {
			tail = "\n\n"
		}
		patched = cleaned[:pos] + "\n\n" + declaration + tail + cleaned[pos:]
	} else if strings.TrimSpace(cleaned) == "" {
		patched = declaration + "\n"
	} else {
		patched = declaration + "\n\n" + cleaned
	}

	return ptnBlankLineRun.ReplaceAllLiteralString(patched, "\n\n")
}

// FindVersionDeclarations returns every declared version value in text, in order.
func FindVersionDeclarations(text string) []string {
	var versions []string
	for _, m := range ptnVersionDeclaration.FindAllStringSubmatch(text, -1) {
		versions = append(versions, m[1])
	}
	return versions
}

// ValidateVersion accepts any single-line value that can be written between
// single quotes. Package versions such as "testing" are allowed.
func ValidateVersion(version string) error {
	if version == "" {
		return goerr.Wrap(types.ValidationError("Field version must not be empty"), "invalid version")
	}
	if strings.ContainsAny(version, "'\"\r\n") {
		return goerr.Wrap(types.ValidationError("Field version must not contain quotes or line breaks"),
			"invalid version", goerr.V("version", version))
	}
	return nil
}

// ValidateSemanticVersion additionally requires a semantic version, with or
// without a leading "v". It is used when strict version checking is enabled.
func ValidateSemanticVersion(version string) error {
	if err := ValidateVersion(version); err != nil {
		return err
	}

	canonical := version
	if !strings.HasPrefix(canonical, "v") {
		canonical = "v" + canonical
	}
	if !semver.IsValid(canonical) {
		return goerr.Wrap(types.ValidationError("Field version must be a semantic version such as 1.2.3"),
			"invalid version", goerr.V("version", version))
	}
	return nil
}

func isLayoutSpace(c byte) bool {
	return c == '\n' || c == '\r' || c == ' ' || c == '\t'
}
