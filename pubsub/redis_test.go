package pubsub

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewClient(mr.Addr())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestPublishGuardaUltimoMensaje(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if err := c.Publish(ctx, "summary-age-23", []byte(`[{"comp":"Comp A"}]`)); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	msg, err := c.LastMessage(ctx, "summary-age-23")
	if err != nil {
		t.Fatalf("LastMessage: %v", err)
	}
	if msg != `[{"comp":"Comp A"}]` {
		t.Errorf("último mensaje = %q", msg)
	}
}

func TestPublishSobreescribeUltimoMensaje(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	if err := c.Publish(ctx, "rooms-age-23-H", []byte(`v1`)); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := c.Publish(ctx, "rooms-age-23-H", []byte(`v2`)); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	msg, err := c.LastMessage(ctx, "rooms-age-23-H")
	if err != nil {
		t.Fatalf("LastMessage: %v", err)
	}
	if msg != "v2" {
		t.Errorf("último mensaje = %q, se esperaba v2", msg)
	}
}

func TestLastMessageCanalSinPublicaciones(t *testing.T) {
	c := newTestClient(t)

	msg, err := c.LastMessage(context.Background(), "participantes-ordenados")
	if err != nil {
		t.Fatalf("LastMessage: %v", err)
	}
	if msg != "" {
		t.Errorf("último mensaje = %q, se esperaba vacío", msg)
	}
}
