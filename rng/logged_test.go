package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/emberworks/rpgkit/rng"
)

func TestLoggedSource_PassesThroughDraws(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logged := rng.NewLoggedSource(rng.NewSeededSource(42), zap.New(core))
	plain := rng.NewSeededSource(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, plain.Intn(100), logged.Intn(100))
	}
	assert.Equal(t, plain.Float64(), logged.Float64())

	assert.Equal(t, 11, logs.Len())
}
