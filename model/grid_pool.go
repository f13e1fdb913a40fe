package model

import "sync"

// scratch pools the boolean next-state buffers used by the evolution
// sweep so steady-state evolution allocates nothing per generation.
var scratch = newBufferPool()

type bufferPool struct {
	pool sync.Pool
}

func newBufferPool() *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return [][]bool(nil)
			},
		},
	}
}

// Get retrieves a cleared width x height buffer, resizing a pooled one
// when the dimensions allow.
func (p *bufferPool) Get(width, height int) [][]bool {
	buf := p.pool.Get().([][]bool)
	if len(buf) != height {
		buf = make([][]bool, height)
	}
	for i := range buf {
		if len(buf[i]) != width {
			buf[i] = make([]bool, width)
		} else {
			for j := range buf[i] {
				buf[i][j] = false
			}
		}
	}
	return buf
}

// Put returns a buffer to the pool for reuse.
func (p *bufferPool) Put(buf [][]bool) {
	p.pool.Put(buf)
}
