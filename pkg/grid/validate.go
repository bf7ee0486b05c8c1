package grid

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/spheregrid/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Report is the outcome of a validation pass. Issues are fatal, warnings
// are not. Under PolicyLenient, edges with missing endpoints are reported
// as warnings and listed in Skipped so assembly can drop them.
type Report struct {
	Policy   Policy
	Issues   []errors.Issue
	Warnings []errors.Issue
	Skipped  map[int]bool
}

// Err returns a *errors.ValidationError holding the fatal issues, or nil.
func (r *Report) Err() error {
	if len(r.Issues) == 0 {
		return nil
	}
	return &errors.ValidationError{Issues: r.Issues}
}

// OK reports whether the configuration has no fatal issue.
func (r *Report) OK() bool { return len(r.Issues) == 0 }

// SkipEdge reports whether edge i must be left out of the scene.
func (r *Report) SkipEdge(i int) bool { return r.Skipped[i] }

func (r *Report) fatal(code errors.Code, path, format string, args ...any) {
	r.Issues = append(r.Issues, errors.Issue{Code: code, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warn(code errors.Code, path, format string, args ...any) {
	r.Warnings = append(r.Warnings, errors.Issue{Code: code, Path: path, Message: fmt.Sprintf(format, args...)})
}

// Validate checks cfg before any layout happens and collects every problem
// instead of stopping at the first one.
//
// Field rules (required values, ranges, enum membership) come from struct
// tags. Structural rules cover identifier syntax and uniqueness, strictly
// increasing tier radii, and references from nodes to tiers and domains and
// from edges to nodes. A node on an unknown tier is always fatal. An edge
// with an unknown endpoint is fatal under PolicyStrict and skipped with a
// warning under PolicyLenient.
func Validate(cfg *Config, policy Policy) *Report {
	r := &Report{Policy: policy, Skipped: map[int]bool{}}
	if cfg == nil {
		r.fatal(errors.ErrCodeInvalidConfig, "", "configuration is nil")
		return r
	}

	r.checkFields(cfg)
	r.checkTiers(cfg)
	domains := r.checkDomains(cfg)
	resources := r.checkResources(cfg)
	nodes := r.checkNodes(cfg, domains, resources)
	r.checkEdges(cfg, nodes)
	r.checkStars(cfg)
	return r
}

func (r *Report) checkFields(cfg *Config) {
	err := validate.Struct(cfg)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		r.fatal(errors.ErrCodeInvalidConfig, "", "%v", err)
		return
	}
	for _, fe := range verrs {
		path := strings.TrimPrefix(fe.Namespace(), "Config.")
		msg := "failed " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		r.fatal(errors.ErrCodeInvalidConfig, path, "%s (got %v)", msg, fe.Value())
	}
}

func (r *Report) checkTiers(cfg *Config) {
	seen := map[string]bool{}
	for i, t := range cfg.Tiers {
		path := fmt.Sprintf("tiers[%d]", i)
		if t.ID == "" {
			continue
		}
		if err := errors.ValidateID(t.ID); err != nil {
			r.fatal(errors.ErrCodeInvalidConfig, path+".id", "%s", errors.UserMessage(err))
		}
		if t.ID == CoreTier {
			r.fatal(errors.ErrCodeInvalidConfig, path+".id", "tier id %q is reserved for the center", CoreTier)
		}
		if seen[t.ID] {
			r.fatal(errors.ErrCodeDuplicateID, path+".id", "duplicate tier id %q", t.ID)
		}
		seen[t.ID] = true
		if i > 0 && t.Radius <= cfg.Tiers[i-1].Radius {
			r.fatal(errors.ErrCodeInvalidConfig, path+".radius",
				"tier radii must be strictly increasing: %g after %g", t.Radius, cfg.Tiers[i-1].Radius)
		}
	}
}

func (r *Report) checkDomains(cfg *Config) map[string]bool {
	ids := map[string]bool{CoreDomain: true}
	seen := map[string]bool{}
	for i, d := range cfg.Domains {
		path := fmt.Sprintf("domains[%d]", i)
		if d.ID == "" {
			continue
		}
		if err := errors.ValidateID(d.ID); err != nil {
			r.fatal(errors.ErrCodeInvalidConfig, path+".id", "%s", errors.UserMessage(err))
		}
		if seen[d.ID] {
			r.fatal(errors.ErrCodeDuplicateID, path+".id", "duplicate domain id %q", d.ID)
		}
		seen[d.ID] = true
		ids[d.ID] = true
		if d.ID != CoreDomain {
			if span := d.Span(); span <= 0 || span > 360 {
				r.fatal(errors.ErrCodeInvalidConfig, path, "angular span must be in (0, 360], got %g", span)
			}
		}
	}
	return ids
}

func (r *Report) checkResources(cfg *Config) map[string]bool {
	ids := map[string]bool{}
	for i, res := range cfg.Resources {
		if res.Type == "" {
			continue
		}
		if ids[res.Type] {
			r.fatal(errors.ErrCodeDuplicateID, fmt.Sprintf("resources[%d].type", i), "duplicate resource type %q", res.Type)
		}
		ids[res.Type] = true
	}
	return ids
}

func (r *Report) checkNodes(cfg *Config, domains, resources map[string]bool) map[string]bool {
	ids := map[string]bool{}
	for i, n := range cfg.Nodes {
		path := fmt.Sprintf("nodes[%d]", i)
		if n.ID != "" {
			if err := errors.ValidateID(n.ID); err != nil {
				r.fatal(errors.ErrCodeInvalidConfig, path+".id", "%s", errors.UserMessage(err))
			}
			if ids[n.ID] {
				r.fatal(errors.ErrCodeDuplicateID, path+".id", "duplicate node id %q", n.ID)
			}
			ids[n.ID] = true
		}
		if n.Tier != "" && !n.IsCore() {
			if _, ok := cfg.Tier(n.Tier); !ok {
				r.fatal(errors.ErrCodeUnknownTier, path+".tier", "node %q references unknown tier %q", n.ID, n.Tier)
			}
		}
		if n.Domain != "" && !domains[n.Domain] {
			r.fatal(errors.ErrCodeUnknownDomain, path+".domain", "node %q references unknown domain %q", n.ID, n.Domain)
		}
		for j, q := range n.Requirements {
			if q.Type != "" && !resources[q.Type] {
				r.warn(errors.ErrCodeUnknownResource, fmt.Sprintf("%s.requirements[%d].type", path, j),
					"node %q requires %q which is not in the resource catalog", n.ID, q.Type)
			}
		}
	}
	return ids
}

func (r *Report) checkEdges(cfg *Config, nodes map[string]bool) {
	for i, e := range cfg.Edges {
		path := fmt.Sprintf("edges[%d]", i)
		for _, end := range []struct{ field, id string }{{"from", e.From}, {"to", e.To}} {
			if end.id == "" || nodes[end.id] {
				continue
			}
			if r.Policy == PolicyLenient {
				r.warn(errors.ErrCodeUnknownNode, path+"."+end.field, "edge %s→%s skipped: unknown node %q", e.From, e.To, end.id)
				r.Skipped[i] = true
			} else {
				r.fatal(errors.ErrCodeUnknownNode, path+"."+end.field, "edge %s→%s references unknown node %q", e.From, e.To, end.id)
			}
		}
		if e.From != "" && e.From == e.To {
			r.warn(errors.ErrCodeDegenerateCurve, path, "edge %s→%s is a self loop", e.From, e.To)
		}
	}
}

func (r *Report) checkStars(cfg *Config) {
	sf := cfg.Background.StarField
	if !sf.Enabled {
		return
	}
	for i, l := range sf.Layers {
		path := fmt.Sprintf("background.starField.layers[%d]", i)
		if l.Size.Min < 0 || l.Size.Min > l.Size.Max {
			r.fatal(errors.ErrCodeInvalidConfig, path+".size", "size range must satisfy 0 <= min <= max, got [%g, %g]", l.Size.Min, l.Size.Max)
		}
		if l.Opacity.Min < 0 || l.Opacity.Max > 1 || l.Opacity.Min > l.Opacity.Max {
			r.fatal(errors.ErrCodeInvalidConfig, path+".opacity", "opacity range must lie in [0, 1] with min <= max, got [%g, %g]", l.Opacity.Min, l.Opacity.Max)
		}
	}
	half := min(cfg.Canvas.Width, cfg.Canvas.Height) / 2
	if half > 0 && sf.AvoidRadius >= half {
		r.warn(errors.ErrCodeInvalidConfig, "background.starField.avoidRadius",
			"avoid radius %g covers most of the canvas; expect many capped star placements", sf.AvoidRadius)
	}
}
