package hashtable

import (
	log "github.com/sirupsen/logrus"
)

type config struct {
	hashFunc  HashFunc
	allocator Allocator
	logger    *log.Entry
}

type Option func(*config)

func WithHashFunc(f HashFunc) Option {
	return func(c *config) {
		if f != nil {
			c.hashFunc = f
		}
	}
}

func WithAllocator(a Allocator) Option {
	return func(c *config) {
		if a != nil {
			c.allocator = a
		}
	}
}

func WithLogger(l *log.Entry) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		hashFunc:  Hash,
		allocator: HeapAllocator{},
		logger:    log.WithFields(log.Fields{"component": "hashtable"}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
