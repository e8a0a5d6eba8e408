// registry_test.go — Session registry and stream lifecycle.
package session_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ffi/api"
	"github.com/momentics/hioload-ffi/fake"
	"github.com/momentics/hioload-ffi/session"
)

func TestRegistry_OpenGetClose(t *testing.T) {
	reg := session.NewRegistry(4)
	h := &fake.Handler{}

	id := reg.Open(h)
	require.NotZero(t, id)
	got, ok := reg.Get(id)
	require.True(t, ok)
	assert.Equal(t, api.Handler(h), got)
	assert.Equal(t, 1, reg.Len())

	reg.Close(id)
	_, ok = reg.Get(id)
	assert.False(t, ok)
	assert.Zero(t, reg.Len())
}

func TestRegistry_Register(t *testing.T) {
	reg := session.NewRegistry(0)
	h := &fake.Handler{}

	ok, err := reg.Register(42, h)
	require.NoError(t, err)
	require.True(t, ok)

	// id already bound
	ok, err = reg.Register(42, &fake.Handler{})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = reg.Register(0, h)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
	_, err = reg.Register(7, nil)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestRegistry_DispatchRouting(t *testing.T) {
	reg := session.NewRegistry(8)
	first := &fake.Handler{}
	second := &fake.Handler{}
	idA := reg.Open(first)
	idB := reg.Open(second)

	delivered := reg.Dispatch(&api.Descriptor{SessionID: idB, Phase: api.PhaseData, Data: []byte("b")})
	require.True(t, delivered)
	delivered = reg.Dispatch(&api.Descriptor{SessionID: idA, Phase: api.PhaseData, Data: []byte("a")})
	require.True(t, delivered)

	require.Len(t, first.Events, 1)
	require.Len(t, second.Events, 1)
	assert.Equal(t, []byte("a"), first.Last().Payload)
	assert.Equal(t, []byte("b"), second.Last().Payload)

	// unknown sessions drop silently
	assert.False(t, reg.Dispatch(&api.Descriptor{SessionID: idB + 100}))
}

func TestStream_Lifecycle(t *testing.T) {
	reg := session.NewRegistry(0)
	h := &fake.Handler{}
	st := reg.OpenStream(h)
	require.NotZero(t, st.ID())

	require.True(t, st.Start(api.MethodNext, nil))
	require.True(t, st.Send(api.MethodNext, []byte("chunk")))
	require.True(t, st.End(api.MethodEnd, nil))

	require.Len(t, h.Events, 3)
	assert.Equal(t, api.PhaseStart, h.Events[0].Phase)
	assert.Equal(t, api.PhaseData, h.Events[1].Phase)
	assert.Equal(t, []byte("chunk"), h.Events[1].Payload)
	assert.Equal(t, api.PhaseEnd, h.Events[2].Phase)
	for _, ev := range h.Events {
		assert.Equal(t, st.ID(), ev.SessionID)
	}

	// terminal phase retired the session
	assert.Zero(t, reg.Len())
	assert.False(t, st.Send(api.MethodNext, []byte("late")))
}

func TestStream_FailClosesSession(t *testing.T) {
	reg := session.NewRegistry(0)
	h := &fake.Handler{}
	st := reg.OpenStream(h)

	require.True(t, st.Start(api.MethodNext, nil))
	require.True(t, st.Fail(api.MethodEnd, []byte("boom")))

	assert.Equal(t, api.PhaseError, h.Last().Phase)
	assert.Zero(t, reg.Len())
}

func TestRegistry_ConcurrentOpenClose(t *testing.T) {
	reg := session.NewRegistry(32)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				id := reg.Open(&fake.Handler{})
				reg.Dispatch(&api.Descriptor{SessionID: id, Phase: api.PhaseStart})
				reg.Close(id)
			}
		}()
	}
	wg.Wait()
	assert.Zero(t, reg.Len())
}
