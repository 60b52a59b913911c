package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/efeecllk/game-insights-sub001/errors"
	"github.com/efeecllk/game-insights-sub001/pack"
)

func gamingPack() *pack.IndustryPack {
	return &pack.IndustryPack{
		ID:      pack.IndustryGaming,
		Name:    "Gaming",
		Version: "1.0.0",
		SemanticTypes: []pack.SemanticType{
			{Type: "user_id", Patterns: []string{"user_id", "player_id"}, Priority: 10},
			{Type: "level", Patterns: []string{"level"}, Priority: 8},
		},
		Metrics: []pack.MetricDefinition{
			{ID: "dau", Name: "DAU"},
			{ID: "arpdau", Name: "ARPDAU", SubCategories: []string{"gacha"}},
		},
		Funnels: []pack.FunnelTemplate{
			{ID: "onboarding", Name: "Onboarding"},
			{ID: "pulls", Name: "Pulls", SubCategories: []string{"gacha"}},
		},
		Terminology: map[string]string{"user": "Player"},
		Theme:       pack.Theme{Primary: "#123456"},
	}
}

func saasPack() *pack.IndustryPack {
	return &pack.IndustryPack{
		ID:      pack.IndustrySaaS,
		Name:    "SaaS",
		Version: "1.0.0",
		SemanticTypes: []pack.SemanticType{
			{Type: "mrr", Patterns: []string{"mrr"}, Priority: 10},
			{Type: "user_id", Patterns: []string{"user_id", "account_id"}, Priority: 7},
		},
	}
}

func TestRegisterAndGet(t *testing.T) {
	reg := New()
	p := gamingPack()

	require.NoError(t, reg.RegisterPack(p))

	got, ok := reg.GetPack(pack.IndustryGaming)
	require.True(t, ok)
	assert.Equal(t, p, got)
	assert.True(t, reg.HasPack(pack.IndustryGaming))
	assert.False(t, reg.HasPack(pack.IndustryFintech))
}

func TestRegisterDuplicateLeavesStateUntouched(t *testing.T) {
	reg := New()
	original := gamingPack()
	require.NoError(t, reg.RegisterPack(original))

	replacement := gamingPack()
	replacement.Name = "Gaming v2"
	err := reg.RegisterPack(replacement)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsConflict(err))
	assert.ErrorIs(t, err, pkgerrors.ErrDuplicatePack)

	got, _ := reg.GetPack(pack.IndustryGaming)
	assert.Equal(t, "Gaming", got.Name)
	assert.Len(t, reg.AllPacks(), 1)
}

func TestRegisterInvalidPackRejected(t *testing.T) {
	reg := New()
	p := gamingPack()
	p.SemanticTypes = append(p.SemanticTypes, pack.SemanticType{Type: "user_id"})

	err := reg.RegisterPack(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrDuplicateSemanticType)
	assert.False(t, reg.HasPack(pack.IndustryGaming))
}

func TestUnregisterPack(t *testing.T) {
	reg := New()
	require.NoError(t, reg.RegisterPack(gamingPack()))

	assert.True(t, reg.UnregisterPack(pack.IndustryGaming))
	assert.False(t, reg.HasPack(pack.IndustryGaming))
	assert.False(t, reg.UnregisterPack(pack.IndustryGaming), "second removal reports false")
}

func TestUpdatePack(t *testing.T) {
	reg := New()

	t.Run("unknown id fails with not found", func(t *testing.T) {
		err := reg.UpdatePack(gamingPack())
		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("replaces wholesale", func(t *testing.T) {
		require.NoError(t, reg.RegisterPack(gamingPack()))

		updated := gamingPack()
		updated.Name = "Gaming v2"
		updated.Version = "2.0.0"
		require.NoError(t, reg.UpdatePack(updated))

		got, _ := reg.GetPack(pack.IndustryGaming)
		assert.Equal(t, "Gaming v2", got.Name)
		assert.Equal(t, "2.0.0", got.Version)
	})

	t.Run("revalidates on update", func(t *testing.T) {
		broken := gamingPack()
		broken.Version = ""
		err := reg.UpdatePack(broken)
		require.Error(t, err)
		assert.ErrorIs(t, err, pkgerrors.ErrMissingField)
	})
}

func TestReadAccessorsNeverFail(t *testing.T) {
	reg := New()

	_, ok := reg.GetPack(pack.IndustryGaming)
	assert.False(t, ok)
	assert.Empty(t, reg.AllPacks())
	assert.Empty(t, reg.RegisteredIndustries())
	assert.Nil(t, reg.SemanticTypes(pack.IndustryGaming))
	assert.Nil(t, reg.Metrics(pack.IndustryGaming, ""))
	assert.Nil(t, reg.Funnels(pack.IndustryGaming, ""))

	_, ok = reg.Terminology(pack.IndustryGaming, "user")
	assert.False(t, ok)
	_, ok = reg.Theme(pack.IndustryGaming)
	assert.False(t, ok)
}

func TestRegistrationOrderPreserved(t *testing.T) {
	reg := New()
	require.NoError(t, reg.RegisterPack(gamingPack()))
	require.NoError(t, reg.RegisterPack(saasPack()))

	assert.Equal(t, []pack.Industry{pack.IndustryGaming, pack.IndustrySaaS}, reg.RegisteredIndustries())

	all := reg.AllPacks()
	require.Len(t, all, 2)
	assert.Equal(t, pack.IndustryGaming, all[0].ID)
	assert.Equal(t, pack.IndustrySaaS, all[1].ID)
}

func TestAllSemanticTypesKeepsCrossPackDuplicates(t *testing.T) {
	reg := New()
	require.NoError(t, reg.RegisterPack(gamingPack()))
	require.NoError(t, reg.RegisterPack(saasPack()))

	types := reg.AllSemanticTypes()
	assert.Len(t, types, 4)

	// user_id appears in both packs and both entries must survive: the
	// same column name can mean different things per industry.
	count := 0
	for _, st := range types {
		if st.Type == "user_id" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestScopedAccessors(t *testing.T) {
	reg := New()
	require.NoError(t, reg.RegisterPack(gamingPack()))

	assert.Len(t, reg.Metrics(pack.IndustryGaming, ""), 2)
	assert.Len(t, reg.Metrics(pack.IndustryGaming, "gacha"), 2)

	puzzle := reg.Metrics(pack.IndustryGaming, "puzzle")
	require.Len(t, puzzle, 1)
	assert.Equal(t, "dau", puzzle[0].ID)

	assert.Len(t, reg.Funnels(pack.IndustryGaming, "gacha"), 2)
	assert.Len(t, reg.Funnels(pack.IndustryGaming, "puzzle"), 1)

	term, ok := reg.Terminology(pack.IndustryGaming, "user")
	require.True(t, ok)
	assert.Equal(t, "Player", term)

	_, ok = reg.Terminology(pack.IndustryGaming, "missing")
	assert.False(t, ok)

	theme, ok := reg.Theme(pack.IndustryGaming)
	require.True(t, ok)
	assert.Equal(t, "#123456", theme.Primary)
}

func TestSubscribeReceivesLifecycleEvents(t *testing.T) {
	reg := New()
	var events []Event
	unsub := reg.Subscribe(func(e Event) error {
		events = append(events, e)
		return nil
	})
	defer unsub()

	require.NoError(t, reg.RegisterPack(gamingPack()))
	updated := gamingPack()
	updated.Version = "1.1.0"
	require.NoError(t, reg.UpdatePack(updated))
	reg.UnregisterPack(pack.IndustryGaming)

	require.Len(t, events, 3)
	assert.Equal(t, EventRegistered, events[0].Type)
	assert.NotNil(t, events[0].Pack)
	assert.Equal(t, EventUpdated, events[1].Type)
	assert.Equal(t, "1.1.0", events[1].Pack.Version)
	assert.Equal(t, EventUnregistered, events[2].Type)
	assert.Nil(t, events[2].Pack)
	for _, e := range events {
		assert.Equal(t, pack.IndustryGaming, e.PackID)
	}
}

func TestNoEventOnFailedMutation(t *testing.T) {
	reg := New()
	require.NoError(t, reg.RegisterPack(gamingPack()))

	count := 0
	unsub := reg.Subscribe(func(Event) error {
		count++
		return nil
	})
	defer unsub()

	_ = reg.RegisterPack(gamingPack()) // duplicate
	_ = reg.UpdatePack(saasPack())     // not registered
	reg.UnregisterPack(pack.IndustryFintech)

	assert.Zero(t, count)
}

func TestListenerFailureIsolation(t *testing.T) {
	reg := New()

	var order []string
	reg.Subscribe(func(Event) error {
		order = append(order, "first")
		return errors.New("listener failure")
	})
	reg.Subscribe(func(Event) error {
		order = append(order, "second")
		panic("listener panic")
	})
	reg.Subscribe(func(Event) error {
		order = append(order, "third")
		return nil
	})

	require.NoError(t, reg.RegisterPack(gamingPack()))

	// All listeners ran in subscription order and the mutation committed.
	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.True(t, reg.HasPack(pack.IndustryGaming))
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	reg := New()
	count := 0
	unsub := reg.Subscribe(func(Event) error {
		count++
		return nil
	})

	require.NoError(t, reg.RegisterPack(gamingPack()))
	unsub()
	unsub() // repeated calls are harmless
	reg.UnregisterPack(pack.IndustryGaming)

	assert.Equal(t, 1, count)
}

func TestReset(t *testing.T) {
	reg := New()
	require.NoError(t, reg.RegisterPack(gamingPack()))
	count := 0
	reg.Subscribe(func(Event) error {
		count++
		return nil
	})

	reg.Reset()

	assert.Empty(t, reg.AllPacks())
	require.NoError(t, reg.RegisterPack(gamingPack()))
	assert.Zero(t, count, "subscriptions cleared by reset")
}

func TestDefaultRegistry(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)

	assert.Same(t, Default(), Default())

	require.NoError(t, Default().RegisterPack(gamingPack()))
	assert.True(t, Default().HasPack(pack.IndustryGaming))

	ResetDefault()
	assert.False(t, Default().HasPack(pack.IndustryGaming))
}
