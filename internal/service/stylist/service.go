// Package stylist orchestrates one chat exchange: classify the prompt,
// plan catalog lookups, execute them, and merge the results into the
// user's outfit.
package stylist

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/analysis/request"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/model/outfit"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/observability"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/service/catalog"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/service/intent"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/service/planner"
	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/service/session"
)

// DefaultMaxOutfitSlots caps how many slots one outfit may hold.
const DefaultMaxOutfitSlots = 6

// Config tunes the orchestrator.
type Config struct {
	// SearchTimeout bounds each catalog call. A timed-out call counts
	// as an empty result.
	SearchTimeout time.Duration
	// MaxOutfitSlots caps the outfit size; zero means the default.
	MaxOutfitSlots int
}

// Result is one finished chat exchange.
type Result struct {
	Reply  string
	Outfit []outfit.Item
}

// Service drives the pipeline. All session mutation happens under the
// store's per-user lock.
type Service struct {
	sessions *session.Store
	catalog  catalog.Searcher
	intents  *intent.Service
	metrics  *observability.Metrics
	logger   *zap.Logger
	cfg      Config
}

// NewService wires the orchestrator.
func NewService(sessions *session.Store, searcher catalog.Searcher, intents *intent.Service, metrics *observability.Metrics, logger *zap.Logger, cfg Config) *Service {
	if cfg.SearchTimeout <= 0 {
		cfg.SearchTimeout = 10 * time.Second
	}
	if cfg.MaxOutfitSlots <= 0 {
		cfg.MaxOutfitSlots = DefaultMaxOutfitSlots
	}
	return &Service{
		sessions: sessions,
		catalog:  searcher,
		intents:  intents,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
	}
}

// HandleChat processes one prompt for one user and returns the reply
// plus the full outfit snapshot. Recoverable trouble (empty catalog
// results, classifier outages) degrades to a smaller or unchanged
// outfit with an explanatory reply; it never fails the exchange.
func (s *Service) HandleChat(ctx context.Context, userID int64, prompt string) Result {
	start := time.Now()
	var result Result
	var action outfit.Action

	s.sessions.With(userID, func(sess *session.Session) {
		view := request.SessionView{
			FilledSlots: sess.FilledSlots(),
			LastSlot:    sess.LastSlot,
		}

		decision := s.intents.Classify(ctx, prompt, view)
		action = decision.Action

		resolved := request.Resolve(prompt)
		if decision.Keyword != "" {
			resolved.Keyword = decision.Keyword
		}

		switch decision.Action {
		case outfit.ActionGreet:
			result = Result{Reply: greetReply, Outfit: sess.Items()}
			return
		case outfit.ActionClarify:
			reply := decision.Reply
			if reply == "" {
				reply = clarifyReply
			}
			result = Result{Reply: reply, Outfit: sess.Items()}
			return
		}

		plan := planner.Build(decision, resolved, sess)
		results := s.execute(ctx, plan)
		touched, missed := s.merge(sess, decision.Action, plan, results)

		result = Result{
			Reply:  composeReply(decision.Action, touched, missed, len(sess.Outfit)),
			Outfit: sess.Items(),
		}
	})

	if s.metrics != nil {
		s.metrics.RecordChat(string(action), time.Since(start))
	}
	s.logger.Info("chat exchange",
		zap.Int64("user_id", userID),
		zap.String("action", string(action)),
		zap.Int("outfit_size", len(result.Outfit)),
		zap.Duration("took", time.Since(start)))

	return result
}

// execute runs every plan step concurrently. Steps have no data
// dependency on each other; the slice keeps results aligned with the
// plan. A step never surfaces an error: failure means empty result.
func (s *Service) execute(ctx context.Context, plan outfit.Plan) [][]outfit.Item {
	results := make([][]outfit.Item, len(plan))
	if len(plan) == 0 {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, step := range plan {
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, s.cfg.SearchTimeout)
			defer cancel()

			items, err := s.catalog.Search(callCtx, step.Params)
			if err != nil {
				s.logger.Warn("catalog step abandoned",
					zap.String("slot", string(step.Slot)),
					zap.Error(err))
				items = nil
			}
			results[i] = items
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// merge writes selected items into the session under the slot and size
// invariants. It returns which slots changed and which came back empty.
func (s *Service) merge(sess *session.Session, action outfit.Action, plan outfit.Plan, results [][]outfit.Item) (touched, missed []outfit.Slot) {
	for i, step := range plan {
		items := results[i]
		if len(items) == 0 {
			// Keep the previous item (or absence) for this slot.
			if s.metrics != nil {
				s.metrics.IncrCatalogSearch("empty")
			}
			missed = append(missed, step.Slot)
			continue
		}
		if s.metrics != nil {
			s.metrics.IncrCatalogSearch("hit")
		}

		var pick outfit.Item
		if action == outfit.ActionShowMore {
			// Nth unseen item, wrapping when the catalog is exhausted.
			r := sess.Rotation[step.Slot]
			pick = items[r%len(items)]
			sess.Rotation[step.Slot] = r + 1
		} else {
			pick = s.firstUnused(sess, step.Slot, items)
			sess.Rotation[step.Slot] = 1
		}

		if _, exists := sess.Outfit[step.Slot]; !exists && len(sess.Outfit) >= s.cfg.MaxOutfitSlots {
			s.logger.Warn("outfit full, skipping slot", zap.String("slot", string(step.Slot)))
			continue
		}

		pick.Type = string(step.Slot)
		sess.Outfit[step.Slot] = pick
		sess.LastParams[step.Slot] = step.Params
		sess.LastSlot = step.Slot
		touched = append(touched, step.Slot)
	}
	return touched, missed
}

// firstUnused prefers a candidate whose asset id is not already worn in
// another slot, keeping items unique within one outfit.
func (s *Service) firstUnused(sess *session.Session, slot outfit.Slot, items []outfit.Item) outfit.Item {
	used := make(map[string]struct{}, len(sess.Outfit))
	for worn, item := range sess.Outfit {
		if worn != slot {
			used[item.AssetID] = struct{}{}
		}
	}
	for _, candidate := range items {
		if _, taken := used[candidate.AssetID]; !taken {
			return candidate
		}
	}
	return items[0]
}

const greetReply = "Hey! I'm your outfit stylist. Tell me a style or theme (knight, sci-fi, casual...) and I'll put a look together."

const clarifyReply = "What kind of outfit are you looking for? A style like knight, ninja or casual, or a specific piece like a helmet, works great."

func composeReply(action outfit.Action, touched, missed []outfit.Slot, outfitSize int) string {
	switch action {
	case outfit.ActionNewOutfit:
		if len(touched) == 0 {
			return "I couldn't find anything matching that right now. Try another style or a broader budget."
		}
		reply := fmt.Sprintf("Put together %d pieces for you - your outfit now has %d items.", len(touched), outfitSize)
		if len(missed) > 0 {
			reply += fmt.Sprintf(" No luck with the %s, though.", slotList(missed))
		}
		return reply
	case outfit.ActionReplace:
		if len(touched) == 0 {
			return fmt.Sprintf("No alternatives found for the %s, so I kept the current one.", slotList(missed))
		}
		return fmt.Sprintf("Swapped the %s. Your outfit has %d items.", slotList(touched), outfitSize)
	case outfit.ActionShowMore:
		if len(touched) == 0 {
			return fmt.Sprintf("Nothing new for the %s right now.", slotList(missed))
		}
		return fmt.Sprintf("Here's another option for the %s.", slotList(touched))
	default:
		return "I'm not sure how to help with that. Could you try rephrasing your request?"
	}
}

func slotList(slots []outfit.Slot) string {
	if len(slots) == 0 {
		return "outfit"
	}
	names := ""
	for i, slot := range slots {
		if i > 0 {
			names += ", "
		}
		names += string(slot)
	}
	return names
}
