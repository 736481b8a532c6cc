package intent

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/analysis/request"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/model/outfit"
)

func TestServiceWithoutModelUsesRules(t *testing.T) {
	svc, err := NewService(context.Background(), nil, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if svc.Enabled() {
		t.Fatal("service without a model must not report enabled")
	}

	view := request.SessionView{}
	got := svc.Classify(context.Background(), "I want a knight outfit", view)
	want := request.Classify("I want a knight outfit", view)
	if got != want {
		t.Fatalf("got %+v, want rule decision %+v", got, want)
	}
	if got.Action != outfit.ActionNewOutfit {
		t.Fatalf("action %q, want new_outfit", got.Action)
	}
}

func TestServiceClassifyDeterministic(t *testing.T) {
	svc, err := NewService(context.Background(), nil, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	view := request.SessionView{
		FilledSlots: []outfit.Slot{outfit.SlotHead, outfit.SlotShirt},
		LastSlot:    outfit.SlotHead,
	}
	first := svc.Classify(context.Background(), "show me more options", view)
	for i := 0; i < 10; i++ {
		if got := svc.Classify(context.Background(), "show me more options", view); got != first {
			t.Fatalf("iteration %d: %+v != %+v", i, got, first)
		}
	}
	if first.Action != outfit.ActionShowMore || first.Slot != outfit.SlotHead {
		t.Fatalf("unexpected decision %+v", first)
	}
}

func TestParseClassifierOutput(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    classifierPayload
		wantErr bool
	}{
		{
			name:    "bare object",
			content: `{"action": "replace", "slot": "Head", "keyword": "pirate", "reply": ""}`,
			want:    classifierPayload{Action: "replace", Slot: "Head", Keyword: "pirate"},
		},
		{
			name:    "code fence",
			content: "```json\n{\"action\": \"greet\"}\n```",
			want:    classifierPayload{Action: "greet"},
		},
		{
			name:    "surrounding prose",
			content: `Sure! Here is the classification: {"action": "clarify", "reply": "What style?"} Hope that helps.`,
			want:    classifierPayload{Action: "clarify", Reply: "What style?"},
		},
		{
			name:    "no object",
			content: "new_outfit",
			wantErr: true,
		},
		{
			name:    "broken json",
			content: `{"action": "greet"`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseClassifierOutput(tc.content)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseClassifierOutput: %v", err)
			}
			if *got != tc.want {
				t.Fatalf("got %+v, want %+v", *got, tc.want)
			}
		})
	}
}

func TestSummarizeSession(t *testing.T) {
	if got := summarizeSession(request.SessionView{}); got != "The user has no outfit yet." {
		t.Fatalf("empty session summary: %q", got)
	}

	got := summarizeSession(request.SessionView{
		FilledSlots: []outfit.Slot{outfit.SlotHead, outfit.SlotPants},
		LastSlot:    outfit.SlotPants,
	})
	want := "Filled slots: Head, Pants. Last touched slot: Pants."
	if got != want {
		t.Fatalf("summary %q, want %q", got, want)
	}
}
