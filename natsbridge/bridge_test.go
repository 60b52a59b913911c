package natsbridge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efeecllk/game-insights-sub001/pack"
	"github.com/efeecllk/game-insights-sub001/registry"
)

type fakePublisher struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	return nil
}

func testPack() *pack.IndustryPack {
	return &pack.IndustryPack{
		ID:      pack.IndustryGaming,
		Name:    "Gaming",
		Version: "1.0.0",
	}
}

func TestBridgeForwardsEvents(t *testing.T) {
	reg := registry.New()
	pub := &fakePublisher{}
	b := New(reg, pub)
	require.NoError(t, b.Start())
	defer b.Stop()

	require.NoError(t, reg.RegisterPack(testPack()))
	reg.UnregisterPack(pack.IndustryGaming)

	require.Equal(t, []string{
		"packs.events.registered",
		"packs.events.unregistered",
	}, pub.subjects)

	var event registry.Event
	require.NoError(t, json.Unmarshal(pub.payloads[0], &event))
	assert.Equal(t, registry.EventRegistered, event.Type)
	assert.Equal(t, pack.IndustryGaming, event.PackID)
	require.NotNil(t, event.Pack)
	assert.Equal(t, "Gaming", event.Pack.Name)
}

func TestBridgeSubjectPrefix(t *testing.T) {
	reg := registry.New()
	pub := &fakePublisher{}
	b := New(reg, pub, WithSubjectPrefix("dashboard.packs"))
	require.NoError(t, b.Start())
	defer b.Stop()

	require.NoError(t, reg.RegisterPack(testPack()))

	require.Len(t, pub.subjects, 1)
	assert.Equal(t, "dashboard.packs.registered", pub.subjects[0])
}

func TestBridgePublishFailureDoesNotBlockRegistry(t *testing.T) {
	reg := registry.New()
	pub := &fakePublisher{err: errors.New("nats down")}
	b := New(reg, pub)
	require.NoError(t, b.Start())
	defer b.Stop()

	require.NoError(t, reg.RegisterPack(testPack()))
	assert.True(t, reg.HasPack(pack.IndustryGaming))
}

func TestBridgeStopDetaches(t *testing.T) {
	reg := registry.New()
	pub := &fakePublisher{}
	b := New(reg, pub)
	require.NoError(t, b.Start())

	b.Stop()
	b.Stop()

	require.NoError(t, reg.RegisterPack(testPack()))
	assert.Empty(t, pub.subjects)
}

func TestBridgeStartRequiresPublisher(t *testing.T) {
	b := New(registry.New(), nil)
	require.Error(t, b.Start())
}

func TestBridgeIgnoresEventsBeforeStart(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.RegisterPack(testPack()))

	pub := &fakePublisher{}
	b := New(reg, pub)
	require.NoError(t, b.Start())
	defer b.Stop()

	assert.Empty(t, pub.subjects, "earlier registrations are not replayed")
}
