// Package deps checks that the native libraries the gtk_cgo build links against are
// installed, through pkg-config.
package deps

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mock_deps

// Prober queries the installed version of a pkg-config module. prefix optionally
// points at a custom install whose pkgconfig directories are searched first.
type Prober interface {
	ModVersion(ctx context.Context, pkgName string, prefix string) (string, error)
}

// PkgConfigErrorKind describes the category of a pkg-config failure.
type PkgConfigErrorKind string

const (
	PkgConfigErrorKindCommandMissing PkgConfigErrorKind = "command_missing"
	PkgConfigErrorKindPackageMissing PkgConfigErrorKind = "package_missing"
)

var (
	// ErrPkgConfigMissing indicates pkg-config is not available on the host.
	ErrPkgConfigMissing = errors.New("pkg-config missing")
	// ErrPkgConfigPackageMissing indicates the requested .pc package was not found.
	ErrPkgConfigPackageMissing = errors.New("pkg-config package missing")
)

// PkgConfigError wraps an error returned by pkg-config probing.
type PkgConfigError struct {
	Kind    PkgConfigErrorKind
	Package string
	Output  string
	Err     error
}

func (e *PkgConfigError) Error() string {
	msg := fmt.Sprintf("pkg-config (%s): %s", e.Kind, e.Package)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PkgConfigError) Unwrap() error { return e.Err }

// PkgConfigProbe runs the pkg-config binary.
type PkgConfigProbe struct{}

func NewPkgConfigProbe() *PkgConfigProbe {
	return &PkgConfigProbe{}
}

func (p *PkgConfigProbe) ModVersion(ctx context.Context, pkgName, prefix string) (string, error) {
	pc, err := exec.LookPath("pkg-config")
	if err != nil {
		return "", &PkgConfigError{
			Kind:    PkgConfigErrorKindCommandMissing,
			Package: pkgName,
			Err:     ErrPkgConfigMissing,
		}
	}

	cmd := exec.CommandContext(ctx, pc, "--modversion", pkgName)
	cmd.Env = CommandEnvWithPrefix(prefix)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", &PkgConfigError{
			Kind:    PkgConfigErrorKindPackageMissing,
			Package: pkgName,
			Output:  strings.TrimSpace(string(out)),
			Err:     ErrPkgConfigPackageMissing,
		}
	}

	return strings.TrimSpace(string(out)), nil
}
