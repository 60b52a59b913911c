package devkit

import "github.com/efeecllk/game-insights-sub001/pack"

// FunnelBuilder assembles one funnel step by step. Build pushes the
// finished funnel into the parent builder and returns the parent, so
// chaining continues at the pack level:
//
//	p, err := devkit.New(pack.IndustryGaming, "Gaming").
//	    CreateFunnel("onboarding", "Onboarding").
//	    AddStep("install", "Install", "install_event").
//	    AddStep("tutorial", "Tutorial Complete", "tutorial_event").
//	    Build().
//	    Build()
type FunnelBuilder struct {
	parent *Builder
	f      pack.FunnelTemplate
}

// CreateFunnel starts a funnel sub-builder attached to this builder
func (b *Builder) CreateFunnel(id, name string) *FunnelBuilder {
	return &FunnelBuilder{
		parent: b,
		f:      pack.FunnelTemplate{ID: id, Name: name},
	}
}

// Describe sets the funnel description
func (fb *FunnelBuilder) Describe(description string) *FunnelBuilder {
	fb.f.Description = description
	return fb
}

// ForSubCategories restricts the funnel to the given sub-categories
func (fb *FunnelBuilder) ForSubCategories(subCategories ...string) *FunnelBuilder {
	fb.f.SubCategories = append(fb.f.SubCategories, subCategories...)
	return fb
}

// AddStep appends a funnel step bound to a semantic type
func (fb *FunnelBuilder) AddStep(id, name, semanticType string) *FunnelBuilder {
	fb.f.Steps = append(fb.f.Steps, pack.FunnelStep{
		ID:           id,
		Name:         name,
		SemanticType: semanticType,
	})
	return fb
}

// AddConditionalStep appends a step with an opaque condition expression
// evaluated downstream
func (fb *FunnelBuilder) AddConditionalStep(id, name, semanticType, condition string) *FunnelBuilder {
	fb.f.Steps = append(fb.f.Steps, pack.FunnelStep{
		ID:           id,
		Name:         name,
		SemanticType: semanticType,
		Condition:    condition,
	})
	return fb
}

// AddEventStep appends a step matched by event name patterns
func (fb *FunnelBuilder) AddEventStep(id, name, semanticType string, eventPatterns ...string) *FunnelBuilder {
	fb.f.Steps = append(fb.f.Steps, pack.FunnelStep{
		ID:            id,
		Name:          name,
		SemanticType:  semanticType,
		EventPatterns: eventPatterns,
	})
	return fb
}

// Build pushes the completed funnel into the parent builder and returns
// the parent for continued chaining
func (fb *FunnelBuilder) Build() *Builder {
	fb.parent.p.Funnels = append(fb.parent.p.Funnels, fb.f)
	return fb.parent
}
