package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"careerpath/internal/repository"
	"careerpath/internal/roadmap"
	"careerpath/internal/service"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate or inspect a user's roadmap",
}

var roadmapGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Replace a user's roadmap with a freshly generated one",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRoadmapService(cmd, func(svc service.RoadmapService, userID uint) (*roadmap.Roadmap, error) {
			return svc.Generate(cmd.Context(), userID)
		})
	},
}

var roadmapShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a user's roadmap, generating it if the user has none",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRoadmapService(cmd, func(svc service.RoadmapService, userID uint) (*roadmap.Roadmap, error) {
			return svc.View(cmd.Context(), userID)
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{roadmapGenerateCmd, roadmapShowCmd} {
		c.Flags().Uint("user", 0, "User id")
		_ = c.MarkFlagRequired("user")
		c.Flags().Int64("seed", 0, "Phrasing seed (0 uses PLAN_SEED)")
		roadmapCmd.AddCommand(c)
	}
}

func withRoadmapService(cmd *cobra.Command, run func(service.RoadmapService, uint) (*roadmap.Roadmap, error)) error {
	cfg, gormDB, log, err := openDB(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	userID, _ := cmd.Flags().GetUint("user")
	if userID == 0 {
		return errors.New("--user must be a positive id")
	}
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = cfg.PlanSeed
	}

	svc := service.NewRoadmapService(
		repository.NewSkillRepository(gormDB),
		repository.NewGoalRepository(gormDB),
		repository.NewResourceRepository(gormDB),
		repository.NewRoadmapRepository(gormDB),
		roadmap.NewPlanner(roadmap.NewRandomPhraser(seed)),
		log,
	)
	rm, err := run(svc, userID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(rm)
}
