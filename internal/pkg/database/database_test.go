package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolConfig_WithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   PoolConfig
		want PoolConfig
	}{
		{
			name: "zero values use defaults",
			in:   PoolConfig{},
			want: PoolConfig{MaxConns: 25, MinConns: 5},
		},
		{
			name: "explicit values kept",
			in:   PoolConfig{MaxConns: 10, MinConns: 2},
			want: PoolConfig{MaxConns: 10, MinConns: 2},
		},
		{
			name: "negative values use defaults",
			in:   PoolConfig{MaxConns: -1, MinConns: -1},
			want: PoolConfig{MaxConns: 25, MinConns: 5},
		},
		{
			name: "min clamped to max",
			in:   PoolConfig{MaxConns: 3, MinConns: 8},
			want: PoolConfig{MaxConns: 3, MinConns: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.withDefaults())
		})
	}
}
