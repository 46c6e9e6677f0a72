package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/pokemarket/goapi/base/ctx"
)

func Test_GetByFunc(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	svc := New(ServiceConfig{Ttl: time.Minute, Pfx: "test"})

	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	var got []string
	req.NoError(svc.GetByFunc(c, "k", &got, getter))
	req.Equal([]string{"a", "b"}, got)
	req.Equal(1, calls)

	got = nil
	req.NoError(svc.GetByFunc(c, "k", &got, getter))
	req.Equal([]string{"a", "b"}, got)
	req.Equal(1, calls)
}

func Test_Del(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()
	svc := New(ServiceConfig{Ttl: time.Minute, Pfx: "test"})

	req.NoError(svc.Set(c, "k", "v"))
	var got string
	req.NoError(svc.Get(c, "k", &got))
	req.Equal("v", got)

	req.NoError(svc.Del(c, "k"))
	req.Equal(ErrNotFound, svc.Get(c, "k", &got))
}
