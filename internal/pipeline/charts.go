// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"
	"strings"

	"github.com/benchviz/resultanalyzer/benchchart"
	"github.com/benchviz/resultanalyzer/benchseries"
)

// A Chart is a composed chart ready to be written.
type Chart struct {
	// Name is the file name of the chart, without extension.
	Name string

	// Kind is the kind of series compared, for comparison charts.
	// It is meaningless for overlay charts.
	Kind benchseries.Kind

	// Series are the headers of the charted series, in drawing
	// order.
	Series []benchseries.Header

	Scene *benchchart.Scene
}

// valuePad is the fraction of the value range left free above and
// below the data.
const valuePad = 0.05

var timeAxis = benchchart.AxisSpec{Title: "time", Unit: "s"}

func valueAxis(k benchseries.Kind) benchchart.AxisSpec {
	if k == benchseries.Memory {
		return benchchart.AxisSpec{Title: "memory", Unit: k.Unit()}
	}
	return benchchart.AxisSpec{Title: "latency", Unit: k.Unit()}
}

// timeRange returns the time axis range shared by ss.
func timeRange(ss []*benchseries.Series) benchseries.Range {
	r := benchseries.Sets(ss).TimeRange()
	if r.Empty() {
		r = r.Pad(0.5)
	}
	return r
}

func empty(ss []*benchseries.Series) bool {
	for _, s := range ss {
		if s.Len() > 0 {
			return false
		}
	}
	return true
}

// names hands out unique renderer names.
type names map[string]int

func (n names) add(name string) string {
	n[name]++
	if c := n[name]; c > 1 {
		return fmt.Sprintf("%s #%d", name, c)
	}
	return name
}

// Charts composes one comparison chart per series kind, holding every
// series of that kind on a shared time axis, followed by one overlay
// chart per (name, variant) pair.
func Charts(series []*benchseries.Series, opts Options) ([]Chart, error) {
	cmp, err := ComparisonCharts(series, opts)
	if err != nil {
		return nil, err
	}
	ov, err := OverlayCharts(series, opts)
	if err != nil {
		return nil, err
	}
	return append(cmp, ov...), nil
}

// ComparisonCharts composes one chart per series kind. All series of
// the kind share the time axis and value axis and are drawn in
// distinct colors. Kinds with no observations are skipped.
func ComparisonCharts(series []*benchseries.Series, opts Options) ([]Chart, error) {
	var charts []Chart
	for _, kind := range []benchseries.Kind{benchseries.Memory, benchseries.Request} {
		ss := benchseries.Select(series, benchseries.ByKind(kind))
		if len(ss) == 0 {
			continue
		}
		name := kind.String()
		if empty(ss) {
			opts.warn("%s: no observations", name)
			continue
		}
		x := timeAxis
		x.Range = timeRange(ss)
		y := valueAxis(kind)
		y.Range = benchseries.ValueRange(ss...).Pad(valuePad)

		c := opts.Base.
			WithTitle(joinTitle(opts.Base, name)).
			WithAxis(benchchart.Bottom, x).
			WithAxis(benchchart.Left, y)
		chart := Chart{Name: name, Kind: kind}
		used := make(names)
		for i, clr := range benchchart.SeriesColors(len(ss)) {
			s := ss[i]
			c = c.WithRenderer(used.add(s.Header.String()), benchchart.SeriesRenderer(s, clr))
			chart.Series = append(chart.Series, s.Header)
		}
		scene, err := c.Compose()
		if err != nil {
			return nil, &StageError{StageCompose, name, err}
		}
		chart.Scene = scene
		charts = append(charts, chart)
	}
	return charts, nil
}

type overlayKey struct {
	name    string
	variant benchseries.Variant
}

// OverlayCharts composes one chart per (name, variant) pair, drawing
// memory against the left axis and request latency against the right
// axis over a shared time axis.
func OverlayCharts(series []*benchseries.Series, opts Options) ([]Chart, error) {
	var keys []overlayKey
	groups := make(map[overlayKey][]*benchseries.Series)
	for _, s := range series {
		k := overlayKey{s.Name, s.Variant}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], s)
	}

	colors := benchchart.SeriesColors(2)
	var charts []Chart
	for _, k := range keys {
		ss := groups[k]
		name := fmt.Sprintf("%s_%s", k.name, strings.ToLower(k.variant.String()))
		if empty(ss) {
			opts.warn("%s: no observations", name)
			continue
		}
		x := timeAxis
		x.Range = timeRange(ss)

		c := opts.Base.
			WithTitle(joinTitle(opts.Base, fmt.Sprintf("%s (%s)", k.name, k.variant))).
			WithAxis(benchchart.Bottom, x)
		chart := Chart{Name: name}
		used := make(names)
		for i, kind := range []benchseries.Kind{benchseries.Memory, benchseries.Request} {
			side := benchchart.Left
			if kind == benchseries.Request {
				side = benchchart.Right
			}
			ks := benchseries.Select(ss, benchseries.ByKind(kind))
			if len(ks) == 0 {
				continue
			}
			y := valueAxis(kind)
			y.Range = benchseries.ValueRange(ks...).Pad(valuePad)
			c = c.WithAxis(side, y)
			for _, s := range ks {
				c = c.WithRendererAxes(used.add(kind.String()), benchchart.SeriesRenderer(s, colors[i]), benchchart.Bottom, side)
				chart.Series = append(chart.Series, s.Header)
			}
		}
		scene, err := c.Compose()
		if err != nil {
			return nil, &StageError{StageCompose, name, err}
		}
		chart.Scene = scene
		charts = append(charts, chart)
	}
	return charts, nil
}

// joinTitle prefixes title with the base configuration's title, if
// any.
func joinTitle(base benchchart.Config, title string) string {
	if t := base.Title(); t != "" {
		return t + ": " + title
	}
	return title
}
