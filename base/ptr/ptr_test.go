package ptr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Ptr(t *testing.T) {
	req := require.New(t)
	req.Equal("a", *String("a"))
	req.Equal(1, *Int(1))
	req.Equal(int64(1), *Int64(1))
	req.Equal(true, *Bool(true))
	now := time.Now()
	req.Equal(now, *Time(now))
}
