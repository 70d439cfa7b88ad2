package ptr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	req := require.New(t)

	req.Equal("seller", *String("seller"))
	req.Equal(30, *Int(30))
	req.Equal(int32(5), *Int32(5))
	req.Equal(int64(100), *Int64(100))

	// each call copies, the pointee stays independent of the argument
	v := "before"
	p := String(v)
	v = "after"
	req.Equal("before", *p)
}
