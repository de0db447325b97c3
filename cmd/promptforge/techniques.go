package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptforge/promptforge/internal/engine"
	"github.com/promptforge/promptforge/pkg/models"
)

var techniquesTier string

var techniquesCmd = &cobra.Command{
	Use:   "techniques",
	Short: "List the available optimization techniques",
	Long: `List the technique catalog with complexity tiers.

Examples:
  promptforge techniques
  promptforge techniques --tier advanced`,
	RunE: runTechniques,
}

func init() {
	techniquesCmd.Flags().StringVar(&techniquesTier, "tier", "", "Filter by tier (simple, intermediate, advanced)")
}

func runTechniques(cmd *cobra.Command, args []string) error {
	if techniquesTier != "" {
		tier := models.ComplexityTier(techniquesTier)
		switch tier {
		case models.TierSimple, models.TierIntermediate, models.TierAdvanced:
		default:
			return fmt.Errorf("unknown tier %q (simple, intermediate, advanced)", techniquesTier)
		}
		for _, t := range engine.Catalog {
			if t.Tier == tier {
				fmt.Println(engine.TechniqueSummary(t))
			}
		}
		return nil
	}

	for _, t := range engine.Catalog {
		fmt.Println(engine.TechniqueSummary(t))
	}
	return nil
}
