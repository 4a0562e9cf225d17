package service

import (
	"context"
	"strings"
)

// ChatService answers the public chat widget with canned, keyword-matched
// replies. Deterministic on purpose: no external calls, no state.
type ChatService struct {
	fallback string
	rules    []chatRule
}

type chatRule struct {
	keywords []string
	reply    string
}

func NewChatService() *ChatService {
	return &ChatService{
		fallback: "Thanks for reaching out! For anything specific, use the contact form and our team will get back to you within one business day.",
		rules: []chatRule{
			{
				keywords: []string{"price", "pricing", "cost", "quote"},
				reply:    "Pricing depends on project scope. Send us a few details through the contact form and we'll prepare a quote within one business day.",
			},
			{
				keywords: []string{"service", "offer", "do you"},
				reply:    "We build web and mobile applications, cloud infrastructure, and security tooling. Check the Services section for the full catalog.",
			},
			{
				keywords: []string{"project", "status", "progress"},
				reply:    "Existing clients can follow project progress in the client portal. Log in and open your dashboard to see live status.",
			},
			{
				keywords: []string{"support", "help", "ticket", "problem", "issue"},
				reply:    "For support, log into the client portal and open a ticket. Our team replies to every ticket, usually the same day.",
			},
			{
				keywords: []string{"hello", "hi", "hey"},
				reply:    "Hello! Ask me about our services, pricing, or the client portal.",
			},
		},
	}
}

func (s *ChatService) Reply(_ context.Context, message string) (string, error) {
	normalized := strings.ToLower(message)
	for _, rule := range s.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				return rule.reply, nil
			}
		}
	}
	return s.fallback, nil
}
