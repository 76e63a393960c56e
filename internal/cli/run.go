package cli

import (
	"context"

	"github.com/dhenderson/gameday-events/internal/announce"
	"github.com/dhenderson/gameday-events/internal/config"
	"github.com/dhenderson/gameday-events/internal/dedup"
	"github.com/dhenderson/gameday-events/internal/logger"
	"github.com/dhenderson/gameday-events/internal/matcher"
	"github.com/dhenderson/gameday-events/internal/notifier"
	"github.com/dhenderson/gameday-events/internal/registry"
	"github.com/dhenderson/gameday-events/internal/scoreboard"
)

// Run loads the registry, wires the real dependencies, and executes one
// announcement pass. Returned errors are fatal (bad registry, bad
// configuration); partial failures inside the pass only log.
func Run(cfg *config.Config, registryPath string, dryRun bool) error {
	reg, err := registry.Load(registryPath)
	if err != nil {
		return err
	}

	formatter, err := announce.New(cfg.Timezone, cfg.RoleMentions)
	if err != nil {
		return err
	}

	var notify notifier.Notifier
	if dryRun {
		notify = notifier.NewDryRunNotifier()
	} else {
		notify, err = notifier.NewWebhook(cfg.WebhookURL)
		if err != nil {
			return err
		}
	}

	store, err := dedup.NewIssueStore(cfg.GitHubAPIURL, cfg.GitHubRepo, cfg.GitHubToken)
	if err != nil {
		return err
	}

	execute(cfg.Sources, reg, formatter, notify, store, cfg.DedupTitle)
	return nil
}

// execute is the fetch -> match -> format -> post -> persist pipeline.
// Sequential by design: one run at a time, every external call bounded
// by its client timeout, no retries.
func execute(
	sources []scoreboard.Source,
	reg registry.Registry,
	formatter *announce.Formatter,
	notify notifier.Notifier,
	store dedup.Store,
	dedupTitle string,
) {
	ctx := context.Background()

	rec, err := store.FindOrCreate(dedupTitle)
	seen := make(map[string]struct{})
	if err != nil {
		// treat as no prior history; the final write is skipped below
		logger.Error("Dedup record unavailable, proceeding without history", logger.Fields{
			"title": dedupTitle,
		}, err)
		rec = nil
	} else {
		seen = store.Read(rec)
		logger.Info("Loaded announced ids", logger.Fields{"count": len(seen)})
	}

	client := scoreboard.NewClient()
	var events []scoreboard.Event
	for _, src := range sources {
		fetched, err := client.Fetch(ctx, src)
		if err != nil {
			logger.Error("Scoreboard fetch failed, skipping source", logger.Fields{
				"source": src.Label,
				"url":    src.URL,
			}, err)
			continue
		}
		logger.Info("Fetched scoreboard", logger.Fields{
			"source": src.Label,
			"events": len(fetched),
		})
		events = append(events, fetched...)
	}

	m := matcher.New(reg, registry.BuildLookup(reg))
	matches := m.Match(events, seen)
	logger.Info("Matched games", logger.Fields{"count": len(matches)})

	posted := 0
	for _, match := range matches {
		message := formatter.Format(match)

		if err := notify.Notify(message); err != nil {
			// not added to seen: eligible again next run
			logger.Error("Announcement failed", logger.Fields{
				"event_id": match.Event.ID,
				"home":     match.HomeID,
				"away":     match.AwayID,
			}, err)
			continue
		}

		seen[match.Event.ID] = struct{}{}
		posted++
		logger.Info("Announced game", logger.Fields{
			"event_id": match.Event.ID,
			"home":     match.HomeID,
			"away":     match.AwayID,
		})
	}

	if posted == 0 {
		logger.Info("No new announcements", nil)
		return
	}

	if rec == nil {
		logger.Warn("Skipping persist, no dedup record", logger.Fields{"announced": posted})
		return
	}

	if err := store.Write(rec, seen); err != nil {
		// announcements already went out; next run may repeat them
		logger.Error("Persisting announced ids failed", logger.Fields{
			"announced": posted,
		}, err)
		return
	}

	logger.Info("Run complete", logger.Fields{
		"announced": posted,
		"total_ids": len(seen),
	})
}
