package deadlines

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/dashboard"
	"tableflip.dev/vita/pkg/printers"
)

// Deadlines prints the merged timeline on its own.
type Deadlines struct {
	App *app.App

	// Now is the aggregation moment; zero means the wall clock. Tests pin
	// it.
	Now time.Time
}

func (n *Deadlines) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not list deadlines, no app configured")
	}
	n.App.Hydrate(ctx)

	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	items := dashboard.UpcomingDeadlines(
		n.App.Reviews.List(),
		n.App.Conferences.List(),
		n.App.Grants.List(),
		now,
	)

	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Upcoming Deadlines", len(items))
	pp.Deadlines(items)
	return nil
}
