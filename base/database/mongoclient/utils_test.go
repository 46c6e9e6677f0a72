package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pokemarket/goapi/base/ptr"
)

func Test_MakeBsonM(t *testing.T) {
	req := require.New(t)

	type patchable struct {
		Sold  *bool   `bson:"sold,omitempty"`
		Name  *string `bson:"name,omitempty"`
		Plain string  `bson:"plain,omitempty"`
	}

	m, err := MakeBsonM(&patchable{Sold: ptr.Bool(true)})
	req.NoError(err)
	req.Equal(true, m["sold"])
	req.NotContains(m, "name")
	req.NotContains(m, "plain")

	m, err = MakeBsonM(&patchable{Name: ptr.String("pikachu"), Plain: "x"})
	req.NoError(err)
	req.Equal("pikachu", m["name"])
	req.Equal("x", m["plain"])
	req.NotContains(m, "sold")
}
