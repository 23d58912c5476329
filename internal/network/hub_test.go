package network

import (
	"apple-chase/pkg/api"
	"apple-chase/pkg/logger"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func msg(t string) api.ServerMessage {
	return api.ServerMessage{Type: t, Payload: []byte("null")}
}

func TestBroadcaster_RegisterSendUnregister(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("a")

	if !b.HasSubscriber("a") || b.SubscriberCount() != 1 {
		t.Fatal("Expected subscriber a")
	}

	if !b.SendTo("a", msg(api.MsgItem)) {
		t.Fatal("SendTo failed")
	}
	if got := <-ch; got.Type != api.MsgItem {
		t.Errorf("Expected ITEM, got %s", got.Type)
	}

	if b.SendTo("missing", msg(api.MsgItem)) {
		t.Error("SendTo to unknown subscriber must report false")
	}

	b.Unregister("a")
	b.Unregister("a") // повторно - без паники
	if _, ok := <-ch; ok {
		t.Error("Channel should be closed after Unregister")
	}
	if b.HasSubscriber("a") {
		t.Error("Subscriber should be gone")
	}
}

func TestBroadcaster_ReRegisterClosesOldChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("a")
	fresh := b.Register("a")

	if _, ok := <-old; ok {
		t.Error("Old channel should be closed")
	}
	b.SendTo("a", msg(api.MsgPlayers))
	if got := <-fresh; got.Type != api.MsgPlayers {
		t.Errorf("Expected PLAYERS on new channel, got %s", got.Type)
	}
}

func TestBroadcaster_Multicast(t *testing.T) {
	b := NewBroadcaster()
	a := b.Register("a")
	c := b.Register("c")
	other := b.Register("other")

	n := b.Multicast([]string{"a", "c", "ghost"}, msg(api.MsgPlayers))
	if n != 2 {
		t.Errorf("Expected 2 deliveries, got %d", n)
	}
	<-a
	<-c
	select {
	case m := <-other:
		t.Errorf("Subscriber outside the list got %s", m.Type)
	default:
	}
}

func TestBroadcaster_FullChannelDoesNotBlock(t *testing.T) {
	b := NewBroadcasterSize(1)
	b.Register("slow")

	if n := b.Broadcast(msg(api.MsgItem)); n != 1 {
		t.Fatalf("Expected first delivery, got %d", n)
	}
	// Канал полон: сообщение отбрасывается, вызов не блокируется
	if n := b.Broadcast(msg(api.MsgItem)); n != 0 {
		t.Errorf("Expected drop on full channel, got %d deliveries", n)
	}
}
