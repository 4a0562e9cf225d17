package service

import (
	"context"
	"strings"
	"testing"
)

func TestChatService_Reply_Keywords(t *testing.T) {
	svc := NewChatService()

	cases := []struct {
		message string
		want    string
	}{
		{"How much does a website cost?", "quote"},
		{"what services do you offer?", "Services"},
		{"Can I check my project status?", "portal"},
		{"I have a problem with my account", "ticket"},
		{"hello there", "Hello"},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			reply, err := svc.Reply(context.Background(), tc.message)
			if err != nil {
				t.Fatalf("reply failed: %v", err)
			}
			if !strings.Contains(reply, tc.want) {
				t.Fatalf("expected reply containing %q, got %q", tc.want, reply)
			}
		})
	}
}

func TestChatService_Reply_Fallback(t *testing.T) {
	svc := NewChatService()

	reply, err := svc.Reply(context.Background(), "xyzzy")
	if err != nil {
		t.Fatalf("reply failed: %v", err)
	}
	if !strings.Contains(reply, "contact form") {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
}

func TestChatService_Reply_CaseInsensitive(t *testing.T) {
	svc := NewChatService()

	lower, _ := svc.Reply(context.Background(), "pricing please")
	upper, _ := svc.Reply(context.Background(), "PRICING PLEASE")
	if lower != upper {
		t.Fatalf("matching should ignore case: %q vs %q", lower, upper)
	}
}
