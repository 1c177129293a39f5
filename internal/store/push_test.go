package store

import "testing"

func TestPushSubscribe(t *testing.T) {
	s := NewPushStore(setupTestDB(t))

	sub, err := s.Subscribe("https://push.example/ep1", "p256dh-key", "auth-key", "kitchen tablet")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if sub.Endpoint != "https://push.example/ep1" {
		t.Errorf("endpoint = %q", sub.Endpoint)
	}
	if sub.Label != "kitchen tablet" {
		t.Errorf("label = %q, want kitchen tablet", sub.Label)
	}
}

func TestPushSubscribeUpsertsByEndpoint(t *testing.T) {
	s := NewPushStore(setupTestDB(t))

	first, _ := s.Subscribe("https://push.example/ep1", "old-p256dh", "old-auth", "tablet")
	second, err := s.Subscribe("https://push.example/ep1", "new-p256dh", "new-auth", "tablet")
	if err != nil {
		t.Fatalf("resubscribe: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected same row, got ids %d and %d", first.ID, second.ID)
	}
	if second.P256dhKey != "new-p256dh" {
		t.Errorf("p256dh = %q, want refreshed key", second.P256dhKey)
	}

	subs, _ := s.List()
	if len(subs) != 1 {
		t.Errorf("len = %d, want 1", len(subs))
	}
}

func TestPushDeleteByEndpoint(t *testing.T) {
	s := NewPushStore(setupTestDB(t))

	s.Subscribe("https://push.example/ep1", "k", "a", "")
	if err := s.DeleteByEndpoint("https://push.example/ep1"); err != nil {
		t.Fatalf("delete by endpoint: %v", err)
	}
	subs, _ := s.List()
	if len(subs) != 0 {
		t.Errorf("len = %d, want 0", len(subs))
	}
}
