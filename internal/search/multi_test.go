package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	name string
	urls []string
	err  error
}

func (f *fakeEngine) Name() string           { return f.name }
func (f *fakeEngine) Requirements() []string { return nil }
func (f *fakeEngine) Search(ctx context.Context, query string) ([]string, error) {
	return f.urls, f.err
}

func TestMultiMergesUniqueURLsInOrder(t *testing.T) {
	m := NewMulti([]Engine{
		&fakeEngine{name: "A", urls: []string{"http://1", "http://2"}},
		&fakeEngine{name: "B", urls: []string{"http://2", "http://3"}},
	})

	res := m.Search(context.Background(), "q")
	assert.Equal(t, []string{"http://1", "http://2", "http://3"}, res.URLs)
}

func TestMultiCapturesEngineErrors(t *testing.T) {
	failing := &QueryError{Engine: "B", Message: "boom"}
	m := NewMulti([]Engine{
		&fakeEngine{name: "A", urls: []string{"http://1"}},
		&fakeEngine{name: "B", err: failing},
	})

	res := m.Search(context.Background(), "q")
	require.Len(t, res.ByEngine, 2)

	assert.Equal(t, []string{"http://1"}, res.URLs)
	assert.NoError(t, res.ByEngine[0].Err)
	assert.ErrorIs(t, res.ByEngine[1].Err, failing)
	assert.Equal(t, "B", res.ByEngine[1].Engine)
}

func TestMultiNoEngines(t *testing.T) {
	res := NewMulti(nil).Search(context.Background(), "q")
	assert.Empty(t, res.URLs)
	assert.Empty(t, res.ByEngine)
}
