package importing

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/importer"
	"tableflip.dev/vita/pkg/printers"
	"tableflip.dev/vita/pkg/record"
)

// Import runs the magic import: hand the pasted text to the extraction
// provider, backfill whatever fields it omitted with sane defaults, and
// add the record. A failed extraction adds nothing.
type Import struct {
	ShowID   bool
	Text     string
	Provider string
	App      *app.App
	Client   *importer.Client
}

func (n *Import) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not import, no app configured")
	}
	n.App.Hydrate(ctx)
	if !n.App.Hydrated() {
		return errors.New("can not import before hydration")
	}

	prefs := n.App.Settings.Settings()

	raw := n.Provider
	if raw == "" {
		raw = prefs.AIProvider
	}
	provider, err := importer.ParseProvider(raw)
	if err != nil {
		return err
	}

	client := n.Client
	if client == nil {
		client = &importer.Client{}
	}

	result, err := client.Process(ctx, n.Text, provider, prefs.APIKey)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	switch result.Kind {
	case importer.KindPeerReview:
		review := result.Review
		if review.Status == "" {
			review.Status = record.ReviewPending
		}
		if review.Journal == "" {
			review.Journal = "Unknown journal"
		}
		n.App.Reviews.Add(review)
		pp.Title("Imported Peer Review")
		pp.Reviews(review)
	case importer.KindGrant:
		grant := result.Grant
		if grant.Status == "" {
			grant.Status = record.GrantPlanning
		}
		if grant.Title == "" {
			grant.Title = "Untitled grant"
		}
		n.App.Grants.Add(grant)
		pp.Title("Imported Grant")
		pp.Grants(grant)
	case importer.KindPaper:
		paper := result.Paper
		if paper.Stage == "" {
			paper.Stage = record.StageIdea
		}
		if paper.Title == "" {
			paper.Title = "Untitled paper"
		}
		n.App.Papers.Add(paper)
		pp.Title("Imported Paper")
		pp.Papers(paper)
	case importer.KindUnknown:
		return fmt.Errorf("could not import: %s", result.Reason)
	default:
		return fmt.Errorf("could not import: unexpected kind %q", result.Kind)
	}

	return nil
}
