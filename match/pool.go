package match

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Every conversion call needs an output buffer, which is short-lived. To
// avoid multiple allocation of buffers we will pool them.
type bufferPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBufferPool *bufferPool

// buffers which grew beyond this capacity are not put back into the pool
const maxPooledCapacity = 64 * 1024

func init() {
	globalBufferPool = &bufferPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return bytes.NewBuffer(make([]byte, 0, 256)), nil
		})
	globalBufferPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBufferPool.opool = pool.NewObjectPool(globalBufferPool.ctx, factory, config)
}

// borrowBuffer returns an empty buffer from the pool.
func borrowBuffer() *bytes.Buffer {
	o, err := globalBufferPool.opool.BorrowObject(globalBufferPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow buffer from pool: %v", err)
		return &bytes.Buffer{}
	}
	return o.(*bytes.Buffer)
}

// releaseBuffer clears a buffer and puts it back into the pool.
func releaseBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledCapacity {
		_ = globalBufferPool.opool.InvalidateObject(globalBufferPool.ctx, buf)
		return
	}
	buf.Reset()
	_ = globalBufferPool.opool.ReturnObject(globalBufferPool.ctx, buf)
}
