package mykafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledProducerIsNoOp(t *testing.T) {
	for _, p := range []*Producer{NewProducer(nil), NewProducer([]string{""}), {}} {
		err := p.PublishEvent(context.Background(), "product_events", "1", map[string]any{"type": "product_created"})
		require.NoError(t, err)
		require.NoError(t, p.Close())
	}
}
