package deps

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/gtkbridge/internal/logging"
)

// Module is one pkg-config module the native backend links against.
type Module struct {
	PkgConfigName string
	DisplayName   string
	MinVersion    string
}

// Modules lists what the gtk_cgo build needs. gtk+-3.0 pulls in the rest; they are
// checked separately so that the report names the missing piece.
var Modules = []Module{
	{"gtk+-3.0", "GTK+ 3", "3.22"},
	{"gdk-3.0", "GDK 3", "3.22"},
	{"glib-2.0", "GLib", "2.56"},
	{"gobject-2.0", "GObject", "2.56"},
	{"cairo", "Cairo", "1.14"},
}

// Status is the result of checking one module.
type Status struct {
	Module
	Installed        bool
	Version          string
	MeetsRequirement bool
	Error            string
}

// Report is the result of Check.
type Report struct {
	Prefix   string
	OK       bool
	Statuses []Status
}

// Check probes every module concurrently. Probe failures end up in the report; the
// error is only set when ctx is cancelled.
func Check(ctx context.Context, p Prober, prefix string, modules []Module) (*Report, error) {
	log := logging.FromContext(ctx).With().Str("component", "deps").Logger()

	statuses := make([]Status, len(modules))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, m := range modules {
		i, m := i, m
		g.Go(func() error {
			statuses[i] = probe(gctx, p, prefix, m)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ok := true
	for _, s := range statuses {
		ok = ok && s.MeetsRequirement
	}
	log.Debug().Bool("ok", ok).Str("prefix", prefix).Msg("native dependency check complete")
	return &Report{Prefix: prefix, OK: ok, Statuses: statuses}, nil
}

func probe(ctx context.Context, p Prober, prefix string, m Module) Status {
	s := Status{Module: m}
	version, err := p.ModVersion(ctx, m.PkgConfigName, prefix)
	if err != nil {
		s.Error = err.Error()
		return s
	}
	s.Installed = true
	s.Version = version

	cmp, ok := compareVersion(version, m.MinVersion)
	if !ok {
		s.Error = "could not parse version"
		return s
	}
	s.MeetsRequirement = cmp >= 0
	return s
}

// compareVersion orders two dotted versions numerically, missing components
// counting as zero. ok is false when either has no numeric prefix.
func compareVersion(a, b string) (cmp int, ok bool) {
	av, ok := versionParts(a)
	if !ok {
		return 0, false
	}
	bv, ok := versionParts(b)
	if !ok {
		return 0, false
	}

	for len(av) < len(bv) {
		av = append(av, 0)
	}
	for len(bv) < len(av) {
		bv = append(bv, 0)
	}
	return slices.Compare(av, bv), true
}

// versionParts reads the numeric components of the leading "3.24.41" part of s;
// anything after it, such as "-rc1", is ignored.
func versionParts(s string) ([]int, bool) {
	end := strings.IndexFunc(s, func(r rune) bool { return r != '.' && (r < '0' || r > '9') })
	if end >= 0 {
		s = s[:end]
	}
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return nil, false
	}

	fields := strings.Split(s, ".")
	parts := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		parts[i] = n
	}
	return parts, true
}
