package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bodylog/bodylog/internal/analytics"
	"github.com/bodylog/bodylog/internal/models"
)

// girthField обхват, по которому оценивается потеря жира
func girthField(dataset models.DatasetKey) string {
	if dataset == models.DatasetMale {
		return "belly"
	}
	return "waist"
}

func (c *Cli) runInsights(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing dataset. Usage: bodylog insights <male|female> [goal-weight]")
	}

	dataset, err := parseDataset(args[0])
	if err != nil {
		return err
	}

	var goalWeight float64
	hasGoal := false
	if len(args) > 1 {
		goalWeight, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid goal weight: %s", args[1])
		}
		hasGoal = true
	}

	entries, err := c.dataService.ListEntries(ctx, dataset)
	if err != nil {
		return err
	}

	c.io.Printf("=== Insights (%s) ===\n", dataset)
	c.io.Println()

	weekly, ok := analytics.WeeklyAverage(entries, models.FieldWeight)
	if !ok {
		c.io.Println("Not enough data. Add at least two weight entries on different dates.")
		return nil
	}

	c.io.Printf("Weekly weight change: %+.2f kg/week\n", weekly)

	rate := analytics.AssessRate(weekly)
	c.io.Printf("Rate: %s\n", rate.Label)

	if analytics.DetectPlateau(entries) {
		c.io.Println("Plateau detected: weight has barely moved for two weeks or more.")
	}

	if hasGoal {
		if est := analytics.EstimateGoalDate(entries, goalWeight); est != nil {
			c.io.Printf("Estimated goal date: %s (about %.1f weeks)\n",
				est.Date.Format("2006-01-02"), est.Weeks)
		} else {
			c.io.Println("Goal date cannot be estimated from the current trend.")
		}
	}

	if waist := analytics.AnalyzeWaist(entries, girthField(dataset)); waist != nil {
		c.io.Println()
		c.io.Printf("Girth change: %+.1f cm total, %+.2f cm/week\n", waist.TotalChange, waist.WeeklyChange)
		c.io.Printf("Assessment: %s\n", waist.Text)
	}

	return nil
}
